/*
Copyright © 2026 the tkrisk authors.
This file is part of tkrisk.

tkrisk is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

tkrisk is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with tkrisk.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tkrisk derives risk-based water quality thresholds from uncertain
// toxicokinetic parameters.
//
// Draws of the uptake rate (ku) and elimination rate (ke), typically from
// an MCMC posterior, are propagated through the steady-state
// bioaccumulation model (see package tk) to give a pooled sample of the
// bioaccumulation factor b = Css / Cw. Because tissue concentration is
// linear in water concentration, the probability that tissue concentration
// exceeds a threshold at water concentration cw is the fraction of b
// greater than threshold / cw. Evaluating that probability over a grid of
// water concentrations gives the exceedance curve, which is then inverted
// to find the water concentration Cw* at which the exceedance probability
// equals a target value.
//
// Run executes the whole calculation for one configuration. The individual
// stages (LoadDraws, ScaleFactors, Quantiles, Bands, Exceedance and Invert)
// are exported so they can be used separately.
package tkrisk

// Version gives the version number.
const Version = "1.0.0"

// MinSamples is the smallest number of draws or scale factors considered
// enough for an empirical quantile or probability estimate.
const MinSamples = 10
