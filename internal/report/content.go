package report

// Narrative content of the dossier. Like the statistical series in the
// dataset package, these strings are fixed at authoring time.

const (
	docTitle    = "EUROPA, ISRAEL y la DIASPORA JUDIA"
	docSubtitle = "Analisis de la relacion entre la poblacion judia en paises europeos " +
		"y su apoyo diplomatico a Israel en la ONU, UE y otros organismos internacionales"

	hypothesisText = "Se analiza si existe una correlacion estadistica entre el tamano de la poblacion judia en cada pais " +
		"europeo y el nivel de apoyo diplomatico de dicho pais hacia Israel en organismos internacionales " +
		"(ONU, UE, etc.). Los datos revelan que la relacion no es lineal ni directa: paises con grandes " +
		"comunidades judias (Francia, Reino Unido) votan frecuentemente contra Israel en la ONU, mientras que " +
		"paises con comunidades muy pequenas (Chequia, Hungria) son sus mayores defensores. " +
		"La ideologia politica del gobierno en turno emerge como el factor predictivo mas fuerte."

	populationSource = "Fuente: Prof. Sergio DellaPergola, American Jewish Year Book 2024. " +
		"Postura: voto en resolucion sept. 2024 (fin presencia israeli). \"En contra\" = pro-Israel."

	scatterIntro = "Cada punto representa un pais europeo. Eje X: poblacion judia (escala logaritmica). " +
		"Eje Y: nivel de apoyo (1=vota contra Israel, 2=abstencion, 3=vota pro-Israel)."

	scatterFinding = "Hallazgo clave: No se observa una correlacion positiva clara entre tamano de la poblacion " +
		"judia y apoyo gubernamental a Israel en la ONU. Francia (438,500 judios) vota sistematicamente " +
		"a favor de resoluciones criticas con Israel, mientras que Chequia (3,900 judios) es uno de sus " +
		"dos unicos defensores en la UE."

	parliamentFinding = "Conclusion: La ideologia politica del eurodiputado es un predictor mucho mas fuerte que su " +
		"nacionalidad. Los grupos de derecha (ECR, ID) votan pro-Israel ~90% del tiempo, mientras que la " +
		"izquierda (Verdes, The Left) lo hace menos del 12%."

	erosionTrend = "Tendencia: Israel perdio el apoyo pasivo (abstenciones) de ~15 paises europeos entre 2017 " +
		"y 2025. Alemania, Italia, Paises Bajos, Polonia, Reino Unido y otros pasaron de abstenerse a votar " +
		"a favor de resoluciones criticas. Solo Hungria y Chequia mantienen un apoyo activo."

	timelineFact = "Dato clave: De los 15 paises UE que reconocen Palestina, Francia tiene la mayor comunidad " +
		"judia (438,500). Esto contradice la hipotesis de que mayor poblacion judia implica mayor apoyo a Israel."

	factorsIntro = "Peso relativo de cada factor segun estudios academicos publicados."

	opinionContext = "Contexto: La favorabilidad publica hacia Israel ha alcanzado minimos historicos en toda " +
		"Europa Occidental. Solo entre el 13% y 21% tiene opinion positiva. Estos niveles presionan a los " +
		"gobiernos hacia posturas mas criticas."

	methodologyNote = "Nota metodologica: Este analisis utiliza datos oficiales de la ONU (votaciones AGNU), del " +
		"Parlamento Europeo (rankings ECI), datos demograficos del American Jewish Year Book (DellaPergola 2024), " +
		"y encuestas de YouGov (2025). Las posturas pueden variar segun la resolucion y el gobierno en turno."

	footerNote = "Generado para fines educativos e investigativos"
)

// countryProfile is one entry in the most/least pro-Israel sections.
type countryProfile struct {
	Name   string
	Pop    string
	Rating string
	Detail string
}

var proIsraelProfiles = []countryProfile{
	{"Chequia", "3,900 judios", "95% pro-Israel PE",
		"Vota \"No\" en resoluciones anti-Israel. Solo 0.04% pob. judia. Gobierno centro-derecha."},
	{"Hungria", "45,000 judios", "90% pro-Israel PE",
		"Vota \"No\". Orban lazos estrechos con Netanyahu. Derecha nacionalista."},
	{"Austria", "10,300 judios", "75% pro-Israel PE",
		"Abstencion sistematica. Se opuso a resoluciones clave en 2023."},
	{"Alemania", "125,000 judios", "70% pro-Israel PE",
		"Abstencion frecuente por \"responsabilidad historica\". 72% coincidencia con EE.UU."},
}

var antiIsraelProfiles = []countryProfile{
	{"Irlanda", "1,600 judios", "14.6% pro-Israel PE (mas bajo UE)",
		"Reconocio Palestina mayo 2024. Identidad postcolonial influye."},
	{"Espana", "13,000 judios", "26% pro-Israel PE",
		"Reconocio Palestina mayo 2024. Podemos puntuo 0% pro-Israel."},
	{"Belgica", "29,000 judios", "~30% pro-Israel PE",
		"Vota a favor de resoluciones criticas pese a 6a mayor comunidad judia."},
	{"Eslovenia", "~100 judios", "~20% pro-Israel PE",
		"Reconocio Palestina junio 2024. Una de las comunidades mas pequenas."},
}

// factorNote describes one radar-chart factor; Color names a palette entry.
type factorNote struct {
	Title  string
	Detail string
	Color  string
}

var factorNotes = []factorNote{
	{"Ideologia Politica (95/100)",
		"Factor mas fuerte. Gobiernos de derecha son mas pro-Israel. Relacion en U. Fuente: Vignoli (2025), JCMS.", "purple"},
	{"Relaciones Comerciales (65/100)",
		"UE = mayor socio comercial de Israel (32% comercio). Fuente: EU Trade Data, Vignoli (2025).", "blue"},
	{"Demografia Musulmana (60/100)",
		"Paises con mas musulmanes son mas criticos con Israel. Fuente: Vignoli (2025).", "amber"},
	{"Experiencia Totalitaria (55/100)",
		"Paises ex-sovieticos tienden a ser pro-Israel. Fuente: ECI (2022), Mandler & Lutmar (2021).", "green"},
	{"Poblacion Judia (15/100)",
		"Factor mas debil. No se aisla como variable en ningun estudio publicado.", "red"},
}

// contradiction is a case refuting (or inversely refuting) the hypothesis.
type contradiction struct {
	Name    string
	Pop     string
	Detail  string
	Verdict string
	Inverse bool
}

var contradictions = []contradiction{
	{"Francia", "438,500 judios",
		"Mayor comunidad judia de Europa. Vota contra Israel en ONU. Reconocio Palestina sept. 2025.",
		"CONTRA hipotesis", false},
	{"Belgica", "29,000 judios",
		"6a mayor comunidad. Vota consistentemente a favor de resoluciones criticas con Israel.",
		"CONTRA hipotesis", false},
	{"Chequia", "3,900 judios",
		"Solo 0.04% poblacion. Uno de los 2 unicos paises UE que vota pro-Israel activamente.",
		"CONTRA hipotesis (inversa)", true},
}

type conclusion struct {
	Title string
	Body  string
}

var conclusions = []conclusion{
	{"No Existe Correlacion Directa Poblacion Judia - Apoyo a Israel",
		"Los datos refutan la hipotesis. Francia (438,500 judios) y Belgica (29,000) votan contra Israel, " +
			"mientras que Chequia (3,900) y Hungria (45,000) son sus unicos defensores en la UE."},
	{"La Ideologia Politica es el Factor Determinante",
		"Partidos de derecha (ECR, ID) votan pro-Israel ~90% en el PE, frente a menos del 12% de la izquierda " +
			"(Verdes, The Left). Se replica a nivel de gobierno nacional."},
	{"El Factor Historico Pesa Mas que la Demografia",
		"Alemania: \"responsabilidad historica\". Paises ex-sovieticos: afinidad geostrategica con EE.UU. " +
			"Irlanda: identidad postcolonial."},
	{"Tendencia General: Erosion Acelerada del Apoyo",
		"Entre 2017 y 2025, Israel perdio ~15 abstenciones europeas. Solo 2 de 27 UE mantienen apoyo activo. " +
			"15 de 27 reconocen Palestina. Opinion publica en minimos."},
	{"Vacio en la Literatura Academica",
		"No existe estudio que aisle la poblacion judia como variable independiente en votaciones ONU. " +
			"Estudios existentes (Vignoli 2025, Mandler & Lutmar 2021) se centran en ideologia, comercio y " +
			"demografia musulmana."},
}

var sources = []string{
	"Datos Demograficos: DellaPergola (2024), American Jewish Year Book; Jewish Virtual Library; Institute for Jewish Policy Research (JPR)",
	"Votaciones ONU: Washington Institute (2025); UN Watch - 2024 UNGA Resolutions; U.S. State Department - Voting Practices in the UN (2024)",
	"Estudios Academicos: Vignoli (2025), JCMS; Mandler & Lutmar (2021), Israel Affairs Vol.27; European Coalition for Israel (ECI) Rankings 2019-2022",
	"Opinion Publica: YouGov EuroTrack, Mayo 2025; Pew Research Center",
}
