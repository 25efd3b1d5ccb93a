//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

// TrustedLogos returns the Wikimedia file names of the trusted logos,
// ordered to match logo-01.png .. logo-16.png.
func TrustedLogos() []string {
	return []string{
		"Harvard_University_coat_of_arms.svg",
		"Princeton_seal.svg",
		"Coat_of_Arms_of_Columbia_University.svg",
		"Cornell_University_seal.svg",
		"Seal_of_Leland_Stanford_Junior_University.svg",
		"MIT_Seal.svg",
		"Seal_of_University_of_California,_Berkeley.svg",
		"Seal_of_the_California_Institute_of_Technology.svg",
		"University_of_Chicago_shield.svg",
		"University_of_California_logo.svg",
		"Mcgill_univ_ca_logo.png",
		"University_of_Washington_seal.svg",
		"Yale_University_Shield_1.svg",
		"University_of_Maryland_seal.svg",
		"Arms_of_University_of_Oxford.svg",
		"Coat_of_Arms_of_the_University_of_Cambridge.svg",
	}
}
