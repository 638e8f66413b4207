package assistant

// Topic selects which context block is sent alongside a question. Each page
// with a chat box maps to one topic.
const (
	TopicMethodology = "methodology"
	TopicReferences  = "references"
)

// contextFor returns the fixed context block for a topic, or false for an
// unknown topic. The blocks are sent verbatim with every request; the model
// is instructed to answer from them only.
func contextFor(topic string) (string, bool) {
	switch topic {
	case TopicMethodology:
		return methodologyContext, true
	case TopicReferences:
		return referencesContext, true
	default:
		return "", false
	}
}

const systemPrompt = `You are the assistant of an oceanographic campaign dashboard.
Answer questions using only the context provided below. Be concise and factual.
If the context does not cover the question, say so and list the topics you can
answer about instead of guessing.`

const methodologyContext = `MEASUREMENT METHODOLOGIES

In-situ sensors:
- CTD SBE-19 Plus (Seabird Scientific) measures temperature, salinity and depth
  with high precision (±0.005°C for temperature), used for vertical profiling.
- The WET Labs ECO-AFL/FL fluorescence sensor measures chlorophyll-a at 470nm
  and 435nm excitation. It is identical to the sensors on BGC-Argo floats and
  requires NPQ correction.
- The WET Labs ECO turbidity sensor measures optical backscatter at 700nm as a
  proxy for suspended particulate matter.
- The Satlantic PAR sensor measures photosynthetically active radiation from
  400-700nm, the light available for phytoplankton growth.
- The SBE 43 dissolved oxygen sensor measures O2 concentration (0-15 mg/L)
  using the Clark-type polarographic method.

Inline system:
- The inline system uses an AC-S spectrophotometer (80+ wavelengths, 400-730nm)
  and a LISST-200X (particle size). Chl-a is derived using the line height at
  676nm. The AC-S alternates filtered and unfiltered seawater to separate
  dissolved from particulate absorption.

Satellites:
- Sentinel-3 OLCI has 21 spectral bands with 300m resolution. It measures
  Chl-a, TSM and Rrs using the OC4ME and Neural Network algorithms. Best
  performance with ±3h matchup windows (R²>0.85).
- MODIS-Aqua has 36 bands with 4km L3 resolution and provides long-term ocean
  colour data since 2002, used for Chl-a climatology.
- PACE OCI is hyperspectral with 5nm resolution covering UV-NIR (340-890nm).
  Launched in 2024, it showed excellent agreement with BGC-Argo radiometry
  (R²=0.95, slope=0.96).

Autonomous platforms and drones:
- BGC-Argo floats (WMO 5906995, 7901133) carry hyperspectral TriOS RAMSES
  radiometers measuring Ed and Lu, profiling 0-1000m every 5-10 days.
- The DJI Phantom 4 Multispectral has 5 bands (450, 560, 650, 730, 840nm),
  weighs 1487g with 27min flight time. Retrievals currently face sun glint and
  calibration challenges (R²=0.43-0.49). The integrated DLS measures incoming
  sunlight in the same 5 bands, needed to convert radiance to Rrs.

Laboratory and validation:
- Chlorophyll-a is measured four ways: CTD fluorescence (WET Labs ECO), inline
  spectrophotometry (676nm line height), laboratory fluorometry (Turner
  Trilogy) and HPLC (SAPIGH CNRS). CTD fluorescence overestimates by factors
  of 1.4-2.1.
- Suspended Particulate Matter is measured gravimetrically on pre-combusted
  Whatman GF/F filters dried 24h at 60°C, following Strickland & Parsons (1968).
- Satellite validation used ±3h windows (n=7, R²>0.85) for algorithmic
  performance and ±1 day windows (n=18-19, R²~0.64) showing natural
  variability. OC-CCI performed best overall.
- Main algorithms: OC4ME (empirical 4-band ratio), Neural Networks, Color
  Index (oligotrophic waters), OC-CCI (multi-algorithm blend). All show
  systematic underestimation at high Chl-a concentrations.`

const referencesContext = `LITERATURE AND SCIENTIFIC CONCEPTS

Ocean colour remote sensing uses the spectral distribution of light leaving
the ocean to estimate water quality parameters. Algorithms such as OC4ME
(empirical 4-band ratio) and Neural Networks retrieve Chl-a from spectral
reflectance; retrievals require comparison with in situ match-ups
representative of diverse optical water types.

Validation and matchup analysis: satellite validation requires strict temporal
synchronization. ±3h windows capture true algorithmic performance (R²>0.85,
MdAPD<17%) while ±1 day windows show natural oceanographic variability
(R²~0.64). Matchup criteria: <3h temporal separation, <1km spatial, clear
water pixels, quality flags passed. Statistics include MdAPD, RMSE, bias and
R² (Bailey & Werdell 2006; EUMETSAT 2022; Seegers et al. 2018).

Uncertainties arise from atmospheric correction (~5-10%), bio-optical
algorithms (~15-30%), temporal variability, spatial scale mismatch and in-situ
reference measurements (IOCCG Report 18). Atmospheric correction removes ~90%
of the satellite-measured radiance; errors propagate strongly in oligotrophic
waters and at short wavelengths.

Chlorophyll-a measurement methods: HPLC (gold standard), fluorometry (fast,
needs calibration), spectrophotometry (676nm line height) and remote sensing.
Fluorescence from BGC-Argo floats requires calibration against HPLC
(Kratzer et al. 2022).

BGC-Argo floats are autonomous profiling platforms with biogeochemical
sensors; hyperspectral floats with TriOS RAMSES radiometers derive Rrs with
R²=0.95 versus PACE, expanding validation beyond fixed moorings (Bittig et
al. 2019; García-Jiménez et al. 2025).

Satellite missions: Sentinel-3 OLCI (21 bands, 300m, A+B constellation with
<2 day revisit), MODIS-Aqua (since 2002, climatology), PACE OCI (hyperspectral
5nm, launched Feb 2024).

Drones: UAV ocean colour faces sun glint correction, radiometric calibration
and viewing-geometry challenges; sky reflection removal is critical for robust
retrievals (Gray et al. 2022).

Inherent Optical Properties (IOPs) are absorption and scattering coefficients
that depend only on the medium, not the light field. Flow-through AC-S systems
measure them continuously across 400-730nm; the Tara Oceans expedition
demonstrated the value of underway optical measurements (Boss et al. 2013;
Slade et al. 2010; Werdell et al. 2013).

Protocols: NASA Ocean Optics Protocols (Mueller et al. 2003) specify
instrument performance and in situ observation requirements for satellite
validation; SeaBASS archival policies ensure standardization. SPM analysis
follows Strickland & Parsons (1968).`
