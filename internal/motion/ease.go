// Package motion implements the character's kinematics: throttle easing,
// heading and position integration, and the dash state machine.
package motion

import "fmt"

// Ease maps a throttle value to a velocity factor.
//
// Below 0.5 the curve is a quadratic ease-in (2t²). From 0.5 on it is
// 1 - 1/(5(2t-0.5)-1), which approaches 1 as t grows. The two halves do not
// meet at 0.5: the left limit is 0.5 and Ease(0.5) is 1/3.
//
// Ease panics if t is negative; the throttle update never produces one.
func Ease(t float64) float64 {
	if t < 0 {
		panic(fmt.Sprintf("motion: ease called with negative throttle %v", t))
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 1/(5*(2*t-0.5)-1)
}
