/*
Package numkit is a small numerical utilities library for Go.
It provides elementary number theory (GCD, LCM), single-variable polynomial
algebra and calculus (evaluation, differentiation, integration, comparison),
generic numeric differentiation and root-finding, combinatorics (factorials,
binomial coefficients) and basic numeric integration rules over closed
intervals, favouring code-simplicity and explicit, recoverable errors.
*/
package numkit
