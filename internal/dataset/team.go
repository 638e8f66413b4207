package dataset

import "oceanpanel/internal/models"

func teamTable() []models.TeamMember {
	return []models.TeamMember{
		{
			Name:          "Lou Andrès",
			Institution:   "ACRI-ST & Laboratoire d'Océanographie de Villefranche (LOV)",
			Location:      "Villefranche-sur-Mer, France",
			Email:         "lou.andres@imev-mer.fr",
			Expertise:     "Ocean optics, BGC-Argo floats, hyperspectral radiometry",
			Contributions: "BGC-Argo float deployment and data processing, Rrs derivation",
			LinkedIn:      "https://www.linkedin.com/in/lou-andr%C3%A8s-913ba4203/",
			ORCID:         "https://orcid.org/0009-0006-4494-6350",
			Photo:         "",
		},
		{
			Name:          "Mathurin Choblet",
			Institution:   "University of Liège",
			Location:      "Liège, Belgium",
			Email:         "mchoblet@uliege.be",
			Expertise:     "Remote sensing, ocean color algorithms, data analysis",
			Contributions: "Satellite data processing, algorithm validation, statistical analysis",
			LinkedIn:      "https://www.linkedin.com/in/mathurin-choblet-93b24a258/",
			ORCID:         "https://orcid.org/0000-0002-0416-7110",
			Photo:         "",
		},
		{
			Name:          "Alba Guzmán-Morales",
			Institution:   "Environmental Mapping Consultants LLC",
			Location:      "Aguadilla, Puerto Rico",
			Email:         "guzmanmorales.al@gmail.com",
			Expertise:     "Coastal oceanography, water quality monitoring, geospatial analysis",
			Contributions: "Remote sensing expert, data quality control",
			LinkedIn:      "https://www.linkedin.com/in/alba-gm/",
			ORCID:         "https://orcid.org/0000-0003-1349-6554",
			Photo:         "",
		},
		{
			Name:          "Sejal Pramlall",
			Institution:   "Marine Optics Laboratory, University of Bergen (UiB)",
			Location:      "Bergen, Norway",
			Email:         "Sejal.Pramlall@uib.no",
			Expertise:     "Marine optics, bio-optical modeling, inherent optical properties",
			Contributions: "Inline optical system setup, IOP processing and analysis",
			LinkedIn:      "https://www.linkedin.com/in/sejal-pramlall-442313133/",
			ORCID:         "https://orcid.org/0000-0003-1786-9178",
			Photo:         "",
		},
		{
			Name:          "Alejandro Román",
			Institution:   "Institute of Marine Sciences of Andalusia (ICMAN-CSIC)",
			Location:      "Puerto Real, Spain",
			Email:         "a.roman@csic.es",
			Expertise:     "Ocean color remote sensing, satellite validation, data visualization",
			Contributions: "Drone operations, data integration",
			LinkedIn:      "https://www.linkedin.com/in/alejandro-rom%C3%A1n-v%C3%A1zquez/",
			ORCID:         "https://orcid.org/0000-0002-8868-9302",
			Photo:         "",
		},
		{
			Name:          "Luz Suklje",
			Institution:   "Centro Austral de Investigaciones Científicas (CADIC-CONICET)",
			Location:      "Ushuaia, Argentina",
			Email:         "luzsuklje@hotmail.com",
			Expertise:     "Antarctic oceanography, biogeochemical cycles, climate variability",
			Contributions: "Field sampling, laboratory analysis, data interpretation",
			LinkedIn:      "https://www.linkedin.com/in/luz-suklje/",
			ORCID:         "https://orcid.org/0009-0004-9380-3669",
			Photo:         "",
		},
	}
}
