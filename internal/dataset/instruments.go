package dataset

import "oceanpanel/internal/models"

func instrumentTable() []models.Instrument {
	return []models.Instrument{
		{
			Name:         "CTD SBE-19 Plus",
			Manufacturer: "Seabird Scientific",
			Category:     models.CategoryInSitu,
			Measures:     "Temperature, salinity, depth (pressure)",
			Specs: []string{
				"Temperature accuracy: ±0.005°C",
				"Conductivity accuracy: ±0.0005 S/m",
				"Pressure range: 0-1000 dbar",
			},
			Summary: "High-precision CTD used for vertical profiling of water properties. Provides the fundamental measurements for water mass characterization and bio-optical model parameterization.",
			Image:   "",
		},
		{
			Name:         "Fluorescence Sensor ECO-AFL/FL",
			Manufacturer: "WET Labs",
			Category:     models.CategoryInSitu,
			Measures:     "Chlorophyll-a fluorescence",
			Specs: []string{
				"Excitation wavelengths: 470nm and 435nm",
				"Emission: ~685nm (Chl-a)",
				"Same sensor used in BGC-Argo floats",
			},
			Summary: "Measures in-vivo chlorophyll-a fluorescence for real-time phytoplankton biomass estimates. Post-processing includes NPQ correction and validation against laboratory Chl-a measurements.",
			Image:   "",
		},
		{
			Name:         "Turbidity Sensor ECO",
			Manufacturer: "WET Labs",
			Category:     models.CategoryInSitu,
			Measures:     "Optical backscatter (turbidity proxy)",
			Specs: []string{
				"Wavelength: 700nm (red)",
				"Scattering angle: 140-150°",
			},
			Summary: "Measures optical backscattering at red wavelengths as a proxy for suspended particulate matter, complementing gravimetric SPM measurements.",
			Image:   "",
		},
		{
			Name:         "PAR Sensor",
			Manufacturer: "Satlantic",
			Category:     models.CategoryInSitu,
			Measures:     "Photosynthetically active radiation",
			Specs: []string{
				"Spectral range: 400-700 nm",
				"Quantum sensor type",
			},
			Summary: "Measures the light available for phytoplankton growth, supporting primary production estimates and bio-optical modeling.",
			Image:   "",
		},
		{
			Name:         "Oxygen Sensor SBE 43",
			Manufacturer: "Seabird Scientific",
			Category:     models.CategoryInSitu,
			Measures:     "Dissolved oxygen concentration",
			Specs: []string{
				"Range: 0-15 mg/L",
				"Clark-type polarographic method",
			},
			Summary: "Dissolved oxygen profiles for water mass characterization alongside the CTD package.",
			Image:   "",
		},
		{
			Name:         "AC-S Spectrophotometer",
			Manufacturer: "WET Labs",
			Category:     models.CategoryInline,
			Measures:     "Hyperspectral absorption and attenuation",
			Specs: []string{
				"80+ wavelengths, 400-730nm",
				"Alternating filtered/unfiltered seawater",
				"Chl-a derived via 676nm line height",
			},
			Summary: "Flow-through spectrophotometer measuring inherent optical properties continuously along the transect. Separates dissolved from particulate absorption by alternating filtered and whole seawater.",
			Image:   "",
		},
		{
			Name:         "LISST-200X",
			Manufacturer: "Sequoia Scientific",
			Category:     models.CategoryInline,
			Measures:     "Particle size distribution",
			Specs: []string{
				"Laser diffraction, 36 size classes",
				"Range: 1-500 µm",
			},
			Summary: "In-line laser diffraction instrument resolving the particle size distribution of the surface ocean, complementing the AC-S optical measurements.",
			Image:   "",
		},
		{
			Name:         "Sentinel-3 OLCI",
			Manufacturer: "ESA / EUMETSAT",
			Category:     models.CategorySatellite,
			Measures:     "Chl-a, TSM, remote sensing reflectance",
			Specs: []string{
				"21 spectral bands, 300m resolution",
				"OC4ME and Neural Network algorithms",
				"A+B constellation, <2 day revisit",
			},
			Summary: "Primary ocean colour mission for the matchup analysis. Best performance with ±3h matchup windows (R²>0.85).",
			Image:   "",
		},
		{
			Name:         "MODIS-Aqua",
			Manufacturer: "NASA",
			Category:     models.CategorySatellite,
			Measures:     "Ocean colour, long-term Chl-a climatology",
			Specs: []string{
				"36 bands, 4km L3 resolution",
				"Continuous record since 2002",
			},
			Summary: "Long-term ocean colour record used for chlorophyll climatology context around the campaign track.",
			Image:   "",
		},
		{
			Name:         "PACE OCI",
			Manufacturer: "NASA",
			Category:     models.CategorySatellite,
			Measures:     "Hyperspectral ocean colour",
			Specs: []string{
				"5nm resolution, 340-890nm (UV-NIR)",
				"Launched 2024",
			},
			Summary: "Hyperspectral imager showing excellent agreement with the BGC-Argo radiometry collected during the campaign (R²=0.95, slope=0.96).",
			Image:   "",
		},
		{
			Name:         "BGC-Argo Float",
			Manufacturer: "PROVOR Jumbo with TriOS RAMSES",
			Category:     models.CategoryAutonomous,
			Measures:     "Hyperspectral Ed and Lu profiles",
			Specs: []string{
				"WMO 5906995 and 7901133",
				"Profiles 0-1000m every 5-10 days",
				"TriOS RAMSES hyperspectral radiometers",
			},
			Summary: "Autonomous profiling floats carrying hyperspectral radiometers. Rrs derived from their profiles validates satellite retrievals far from fixed moorings.",
			Image:   "",
		},
		{
			Name:         "DJI Phantom 4 Multispectral",
			Manufacturer: "DJI",
			Category:     models.CategoryDrone,
			Measures:     "Multispectral water-leaving radiance",
			Specs: []string{
				"5 bands: 450, 560, 650, 730, 840nm",
				"1487g, 27min flight time",
				"Integrated DLS for irradiance normalization",
			},
			Summary: "Low-altitude multispectral imaging over the stations. Current retrievals are limited by sun glint and calibration (R²=0.43-0.49) and need methodological refinement.",
			Image:   "",
		},
	}
}
