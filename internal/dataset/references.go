package dataset

import "oceanpanel/internal/models"

func referenceTable() []models.Reference {
	return []models.Reference{
		{Authors: "Bailey, S.W. & Werdell, P.J.", Year: "2006",
			Title:   "A multi-sensor approach for the on-orbit validation of ocean color satellite data products",
			Journal: "Remote Sens Environ", Volume: "102", Pages: "12–23"},
		{Authors: "Baudena, A., Riom, W., Taillandier, V., Mayot, N., Mignot, A. & D'Ortenzio, F.", Year: "2025",
			Title:   "Comparing satellite and BGC-Argo chlorophyll estimation: A phenological study",
			Journal: "Remote Sens. Environ.", Volume: "326", Pages: "114743"},
		{Authors: "Bittig, H.C. et al.", Year: "2019",
			Title:   "A BGC-Argo Guide: Planning, Deployment, Data Handling and Usage",
			Journal: "Front. Mar. Sci.", Volume: "6"},
		{Authors: "Boss, E. et al.", Year: "2013",
			Title:   "The characteristics of particulate absorption, scattering and attenuation coefficients in the surface ocean; Contribution of the Tara Oceans expedition",
			Journal: "Methods Oceanogr.", Volume: "7", Pages: "52–62"},
		{Authors: "Boss, E., Slade, W.H., Behrenfeld, M.J. & Dall'Olmo, G.", Year: "2001",
			Title:   "Optical techniques for remote assessment of particle size, composition, and abundance in natural waters",
			Journal: "J. Remote Sens.", Volume: "22", Pages: "325–345"},
		{Authors: "Boss, E., Slade, W.H. & Hill, P.", Year: "2018",
			Title:   "LISST processing and distribution validation for particle size and optical properties in oceanic waters",
			Journal: "Methods Oceanogr.", Volume: "7", Pages: "94–104"},
		{Authors: "Brewin, R.J.W., Dall'Olmo, G., Pardo, S., van Dongen-Vogels, V. & Boss, E.S.", Year: "2016",
			Title:   "Underway spectrophotometry along the Atlantic Meridional Transect reveals high performance in satellite chlorophyll retrievals",
			Journal: "Remote Sens. Environ.", Volume: "183", Pages: "82–97"},
		{Authors: "Brewin, R.J.W. et al.", Year: "2015",
			Title:   "The Ocean Colour Climate Change Initiative: III. A round-robin comparison on in-water bio-optical algorithms",
			Journal: "Remote Sens Environ", Volume: "162", Pages: "271–294"},
		{Authors: "Cetinic, I., Perry, M.J., D'Asaro, E.A., Briggs, N., Poulton, N. & Sieracki, M.E.", Year: "2016",
			Title:   "A simple optical technique for continuous measurement of particle size distributions in natural waters",
			Journal: "Limnol. Oceanogr. Methods", Volume: "14", Pages: "303–317"},
		{Authors: "Copernicus Marine Service",
			Title: "Ocean Colour Multi-sensor Global Ocean Colour Product (Level 3/4)"},
		{Authors: "EUMETSAT", Year: "2022",
			Title: "Recommendations for Sentinel-3 OLCI Ocean Colour product validations in comparison with in situ measurements. Matchup Protocols: Vol. EUM/SEN3/DOC/19/1092968 (V8B)"},
		{Authors: "García-Jiménez, J., Ruescas, A.B., Amorós-López, J. & Sauzède, R.", Year: "2025",
			Title:   "Combining BioGeoChemical-Argo (BGC-Argo) floats and satellite observations for water column estimations of the particulate backscattering coefficient",
			Journal: "Ocean Sci.", Volume: "21", Pages: "1677–1694"},
		{Authors: "Gray, P.C. et al.", Year: "2022",
			Title:   "Robust ocean color from drones: Viewing geometry, sky reflection removal, uncertainty analysis, and a survey of the Gulf Stream front",
			Journal: "Limnol. Oceanogr. Methods", Volume: "20", Pages: "656–673"},
		{Authors: "Hu, C. et al.", Year: "2019",
			Title:   "Improving Satellite Global Chlorophyll a Data Products Through Algorithm Refinement and Data Recovery",
			Journal: "J Geophys Res Oceans", Volume: "124", Pages: "1524–1543"},
		{Authors: "IOCCG", Year: "2019",
			Title: "Uncertainties in Ocean Colour Remote Sensing. Mélin F. (ed.), IOCCG Report Series, No. 18, International Ocean Colour Coordinating Group, Dartmouth, Canada"},
		{Authors: "Jackson, T., Calton, B. & Hockley, K.", Year: "2023",
			Title: "C3S Ocean Colour Version 6.0: Product User Guide and Specification. Issue 1.1. E.U. Copernicus Climate Change Service"},
		{Authors: "Kratzer, S. et al.", Year: "2022",
			Title:   "International intercomparison of in situ chlorophyll-a measurements",
			Journal: "Front. Remote Sens.", Volume: "3", Pages: "866712"},
		{Authors: "Liu, Y., Cao, H., Li, H., Wang, J. & Ma, Y.", Year: "2018",
			Title:   "Evaluation of optical estimation algorithms for particle size in natural waters",
			Journal: "Opt. Express", Volume: "26", Pages: "19395–19413"},
		{Authors: "Mabit, R., Araújo, C.A.S., Singh, R.K. & Bélanger, S.", Year: "2022",
			Title:   "Empirical Remote Sensing Algorithms to Retrieve SPM and CDOM in Québec Coastal Waters",
			Journal: "Front. Remote Sens.", Volume: "3"},
		{Authors: "Mo, J. et al.", Year: "2024",
			Title:   "Remote sensing inversion of suspended particulate matter in the estuary of the Pinglu Canal in China based on machine learning algorithms",
			Journal: "Front. Mar. Sci.", Volume: "11"},
		{Authors: "Mueller, J.L., Fargion, G.S. & McClain, C.R.", Year: "2003",
			Title: "Ocean Optics Protocols for Satellite Ocean Color Sensor Validation, Revision 4, Volume III: Radiometric Measurements and Data Analysis Protocols. NASA Technical Memorandum 2003–211621/Rev4–Vol. III, NASA Goddard Space Flight Center"},
		{Authors: "O'Reilly, J.E. et al.", Year: "1998",
			Title:   "Ocean color chlorophyll algorithms for SeaWiFS",
			Journal: "J Geophys Res Oceans", Volume: "103", Pages: "24937–24953"},
		{Authors: "O'Reilly, J.E. & Werdell, P.J.", Year: "2019",
			Title:   "Chlorophyll algorithms for ocean color sensors- OC4, OC5 & OC6",
			Journal: "Remote Sens Environ", Volume: "229", Pages: "32–47"},
		{Authors: "Parsons, T.R., Maita, Y. & Lalli, C.M.", Year: "1984",
			Title: "A Manual of Chemical and Biological Methods for Seawater Analysis. Pergamon Press, Oxford, 173 pp."},
		{Authors: "Pramlall, S., Jackson, J.M., Konik, M. & Costa, M.", Year: "2023",
			Title:   "Merged multi-sensor ocean colour chlorophyll product evaluation for the British Columbia Coast",
			Journal: "Remote Sens", Volume: "15", Pages: "687"},
		{Authors: "Seegers, B.N., Stumpf, R.P., Schaeffer, B.A., Loftin, K.A., Werdell, J.P.", Year: "2018",
			Title:   "Performance metrics for the assessment of satellite data products: an ocean color case study",
			Journal: "Optics Express", Volume: "26(6)", Pages: "7404-7422"},
		{Authors: "Slade, W.H. et al.", Year: "2010",
			Title:   "Underway and Moored Methods for Improving Accuracy in Measurement of Spectral Particulate Absorption and Attenuation",
			Journal: "J. Atmos. Oceanic Technol."},
		{Authors: "Strickland, J.D.H. & Parsons, T.R.", Year: "1968",
			Title: "A Practical Handbook of Seawater Analysis. 1st ed. Bulletin Fisheries Research Board of Canada, Ottawa, Canada"},
		{Authors: "Volpe, G. et al.", Year: "2019",
			Title:   "Mediterranean ocean colour Level 3 operational multi-sensor processing",
			Journal: "Ocean Sci", Volume: "15", Pages: "127–146"},
		{Authors: "Volpe, G. et al.", Year: "2007",
			Title:   "The colour of the Mediterranean Sea: Global versus regional bio-optical algorithms evaluation and implication for satellite chlorophyll estimates",
			Journal: "Remote Sens Environ", Volume: "107", Pages: "625–638"},
		{Authors: "Wei, J., Wang, M., Jiang, L., Yu, X., Mikelsons, K. & Shen, F.", Year: "2021",
			Title:   "Global Estimation of Suspended Particulate Matter From Satellite Ocean Color Imagery",
			Journal: "J. Geophys. Res. Oceans", Volume: "126", Pages: "e2021JC017303"},
		{Authors: "Werdell, P.J. et al.", Year: "2013",
			Title:   "The OceanOptics InLineAnalysis package used in AC-S data processing",
			Journal: "Limnol. Oceanogr. Methods", Volume: "11", Pages: "42–54"},
	}
}
