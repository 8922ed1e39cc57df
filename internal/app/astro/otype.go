package astro

import "fmt"

// Таблица кодов типов объектов SIMBAD -> человекочитаемые названия.
// По официальной иерархии: http://simbad.u-strasbg.fr/simbad/sim-display?data=otypes
var objectTypes = map[string]string{
	// Звёзды и звёздные объекты
	"*":    "Star",
	"**":   "Double or Multiple Star",
	"PM*":  "High Proper Motion Star",
	"HV*":  "High Velocity Star",
	"V*":   "Variable Star",
	"Ir*":  "Irregular Variable Star",
	"Or*":  "Variable Star in Orion Nebula",
	"RI*":  "Variable Star with Rapid Variations",
	"Er*":  "Eruptive Variable Star",
	"Fl*":  "Flare Star",
	"FU*":  "FU Orionis Star",
	"RC*":  "Variable Star of R CrB Type",
	"RC?":  "Variable Star of R CrB Type (Candidate)",
	"Ro*":  "Rotationally Variable Star",
	"a2*":  "Variable Star of Alpha2 CVn Type",
	"Psr":  "Pulsar",
	"BY*":  "Variable Star of BY Dra Type",
	"RS*":  "Variable Star of RS CVn Type",
	"Pu*":  "Pulsating Variable Star",
	"RR*":  "Variable Star of RR Lyr Type",
	"Ce*":  "Cepheid Variable Star",
	"dS*":  "Delta Scuti Variable Star",
	"RV*":  "Variable Star of RV Tau Type",
	"WV*":  "Variable Star of W Vir Type",
	"bC*":  "Variable Star of Beta Cep Type",
	"cC*":  "Classical Cepheid Variable Star",
	"gD*":  "Gamma Doradus Variable Star",
	"SX*":  "Variable Star of SX Phe Type",
	"LP*":  "Long Period Variable Star",
	"Mi*":  "Variable Star of Mira Cet Type",
	"sr*":  "Semi-Regular Variable Star",
	"S*":   "S Star",
	"s*r":  "Semi-Regular Variable Star",
	"s*b":  "Semi-Regular Variable Star (subtype B)",
	"AB*":  "Asymptotic Giant Branch Star",
	"C*":   "Carbon Star",
	"N*":   "Wolf-Rayet Star",
	"WD*":  "White Dwarf",
	"ZZ*":  "Variable White Dwarf of ZZ Cet Type",
	"BD*":  "Brown Dwarf",
	"LM*":  "Low Mass Star",
	"YS*":  "Young Stellar Object",
	"pA*":  "Post-AGB Star",
	"WU*":  "W UMa-type Eclipsing Binary",
	"Ae*":  "Herbig Ae/Be Star",
	"Em*":  "Emission Line Star",
	"Be*":  "Be Star",
	"BS*":  "Blue Straggler Star",
	"RG*":  "Red Giant Branch Star",
	"sg*":  "Evolved Supergiant Star",
	"s*y":  "Symbiotic Star",
	"HS*":  "Hot Subdwarf",
	"WR*":  "Wolf-Rayet Star",
	"of*":  "Of Star",
	"NO*":  "Nova",
	"NL*":  "Nova-like Star",
	"DN*":  "Dwarf Nova",
	"XB*":  "X-ray Binary",
	"LXB":  "Low Mass X-ray Binary",
	"HXB":  "High Mass X-ray Binary",
	// Звёздные ассоциации и скопления
	"As*":  "Association of Stars",
	"St*":  "Stellar Stream",
	"MGr":  "Moving Group",
	"EB*":  "Eclipsing Binary",
	"Al*":  "Algol-type Eclipsing Binary",
	"bL*":  "Beta Lyrae-type Eclipsing Binary",
	"CV*":  "Cataclysmic Variable Star",
	"Pec*": "Peculiar Star",
	"Cl*":  "Star Cluster",
	"GlC":  "Globular Cluster",
	"OpC":  "Open Cluster",
	// Туманности
	"Neb": "Nebula",
	"PN":  "Planetary Nebula",
	"SNR": "Supernova Remnant",
	"RNe": "Reflection Nebula",
	"ENe": "Emission Nebula",
	"DNe": "Dark Nebula",
	"HII": "HII Region",
	"MoC": "Molecular Cloud",
	"glb": "Globule",
	"cor": "Dense Core",
	"SFR": "Star Forming Region",
	"BiC": "Bright Cloud",
	// Галактики
	"G":    "Galaxy",
	"GiC":  "Galaxy in Cluster",
	"GiG":  "Galaxy in Group",
	"GPa":  "Galaxy Pair",
	"GTr":  "Galaxy Triple",
	"CGG":  "Compact Group of Galaxies",
	"PaG":  "Pair of Galaxies",
	"SpG":  "Spiral Galaxy",
	"S0G":  "Lenticular Galaxy",
	"EG":   "Elliptical Galaxy",
	"IG":   "Irregular Galaxy",
	"SBG":  "Barred Spiral Galaxy",
	"BCG":  "Blue Compact Galaxy",
	"LSB":  "Low Surface Brightness Galaxy",
	"H2G":  "HII Galaxy",
	"EmG":  "Emission-line Galaxy",
	"SyG":  "Seyfert Galaxy",
	"Sy1":  "Seyfert 1 Galaxy",
	"Sy2":  "Seyfert 2 Galaxy",
	"rG":   "Radio Galaxy",
	"AG*":  "Active Galaxy Nucleus",
	"QSO":  "Quasar",
	"Bz*":  "Blazar",
	"BLL":  "BL Lac Object",
	"OVV":  "Optically Violently Variable Object",
	"Lys":  "LINER-type Active Galaxy Nucleus",
	// Объекты Солнечной системы
	"Sun": "Sun",
	"Pla": "Planet",
	"DPl": "Dwarf Planet",
	"Moo": "Moon",
	"sat": "Satellite",
	"Ast": "Asteroid",
	"Com": "Comet",
	"MeT": "Meteor",
	// Прочее
	"err":  "Not an Object (Error, Artefact, ...)",
	"?":    "Object of Unknown Nature",
	"mul":  "Composite Object",
	"reg":  "Region Defined in the Sky",
	"vid":  "Underdense Region of the Universe",
	"SCG":  "Supercluster of Galaxies",
	"ClG":  "Cluster of Galaxies",
	"GrG":  "Group of Galaxies",
	"CGb":  "Compact Group Member",
	"LeI":  "Gravitationally Lensed Image",
	"LeG":  "Gravitationally Lensed Image of a Galaxy",
	"LeQ":  "Gravitationally Lensed Image of a Quasar",
	"LyA":  "Lyman Alpha Emitter",
	"SN*":  "SuperNova",
	"SNI":  "Type I Supernova",
	"SNII": "Type II Supernova",
	"gLe":  "Gravitational Lens",
	"gLS":  "Gravitational Lens System",
	"GWE":  "Gravitational Wave Event",
	"..?":  "Possible Gravitational Wave Event",
	"TDE":  "Tidal Disruption Event",
	"ISM":  "Interstellar Medium",
	"PoC":  "Part of Cloud",
	"PoG":  "Part of Galaxy",
	"Rad":  "Radio Source",
	"mR":   "Metric Radio Source",
	"cm":   "Centimetric Radio Source",
	"mm":   "Millimetric Radio Source",
	"smm":  "Sub-Millimetric Source",
	"HI":   "HI (21cm) Source",
	"rB":   "Radio Burst",
	"Mas":  "Maser",
	"IR":   "Infra-Red Source",
	"FIR":  "Far-Infrared Source",
	"NIR":  "Near-Infrared Source",
	"MIR":  "Mid-Infrared Source",
	"THz":  "TeraHertz Source",
	"blu":  "Blue Object",
	"UV":   "UV-emission Source",
	"X":    "X-ray Source",
	"ULX":  "Ultra-Luminous X-ray Source",
	"gam":  "Gamma-ray Source",
	"gB":   "Gamma-ray Burst",
	"grv":  "Gravitational Source",
	"Lev":  "(Micro)Lensing Event",
	"IntG": "Interacting Galaxies",
	"BH":   "Black Hole",
}

// TranslateObjectType переводит код типа объекта SIMBAD в читаемое название.
// Неизвестные коды не считаются ошибкой.
func TranslateObjectType(code string) string {
	if label, ok := objectTypes[code]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%s)", code)
}
