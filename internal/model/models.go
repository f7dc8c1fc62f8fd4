// Package model provides the closed-form worm-like chain force-extension
// models. All functions are pure: physical parameters plus one independent
// variable (or a measurement pair) in, predicted value out. Degenerate
// inputs (d approaching Lc, zero force or persistence length) produce
// NaN/Inf which propagate to the caller; no errors are raised here.
//
// Units follow optical-tweezers convention: distances between end points
// arrive in micrometers and are scaled to nanometers internally, contour
// and persistence lengths are in nanometers, forces and the stretch
// modulus in piconewtons, and kBT in pN·nm.
package model

import "math"

// umToNm scales end-to-end distances to the nanometer scale of Lc and Lp.
const umToNm = 1000.0

// bouchiatAlpha holds the correction coefficients for powers 2..7 of the
// normalized extension (Bouchiat et al., Biophys. J. 76, 1999).
var bouchiatAlpha = [6]float64{-0.5164228, -2.737418, 16.07497, -38.87607, 39.49944, -14.17718}

// WLCForce returns the force [pN] required to extend an inextensible
// worm-like chain to end-to-end distance d [µm].
//
// Bustamante, Marko, Siggia, Smith, Science 265 (1994).
func WLCForce(d, kBT, Lc, Lp float64) float64 {
	l := d * umToNm / Lc
	return (kBT / Lp) * (0.25/((1-l)*(1-l)) - 0.25 + l)
}

// BouchiatForce returns the WLC force with the seventh-order polynomial
// correction, accurate to ~0.01% over the full extension range.
func BouchiatForce(d, kBT, Lc, Lp float64) float64 {
	l := d * umToNm / Lc
	return (kBT / Lp) * (0.25/((1-l)*(1-l)) - 0.25 + l + correction(l))
}

// EWLCForce returns the force [pN] for an extensible worm-like chain at
// the observed (distance [µm], force [pN]) pair. The normalized extension
// is d/Lc - F/S.
func EWLCForce(d, F, kBT, Lc, Lp, S float64) float64 {
	l := d*umToNm/Lc - F/S
	return (kBT / Lp) * (0.25/((1-l)*(1-l)) - 0.25 + l)
}

// EBouchiatForce applies the Bouchiat correction to the extensible
// normalized extension.
func EBouchiatForce(d, F, kBT, Lc, Lp, S float64) float64 {
	l := d*umToNm/Lc - F/S
	return (kBT / Lp) * (0.25/((1-l)*(1-l)) - 0.25 + l + correction(l))
}

// OdijkDistance returns the end-to-end distance [µm] of a stiff chain
// under tension F [pN].
//
// Odijk, Macromolecules 28 (1995).
func OdijkDistance(F, kBT, Lc, Lp, S float64) float64 {
	return Lc * (1 - 0.5*math.Sqrt(kBT/(F*Lp)) + F/S) / umToNm
}

// correction evaluates the Bouchiat polynomial at normalized extension l.
func correction(l float64) float64 {
	var corr float64
	p := l * l
	for _, a := range bouchiatAlpha {
		corr += a * p
		p *= l
	}
	return corr
}
