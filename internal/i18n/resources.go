package i18n

// Translation tables for the club app. Keys follow the web app's i18n
// resource names so API clients can reuse them directly.

var englishTable = map[string]string{
	// Navigation & common
	"home":      "Home",
	"about":     "About Us",
	"events":    "Events",
	"contact":   "Contact",
	"details":   "DETAILS",
	"allEvents": "All Events",

	// Home page
	"mainTitle":          "CROSUL SPERANTEI BLAJ",
	"subtitle":           "8th Edition",
	"featuredEventsTitle": "Ongoing Events",
	"featuredEventsNote": "Some events are ongoing and you can join anytime!",
	"previousEventsTitle": "Previous Events",
	"partnersTitle":      "Our Partners",

	"loading": "Loading...",

	// Events
	"eventDetails":       "Event Details",
	"difficulty":         "Difficulty",
	"difficultyLevel":    "Difficulty Level",
	"prices":             "Prices",
	"registrationPrices": "Registration Prices",
	"distances":          "Distances",
	"availableDistances": "Available Distances",
	"startTime":          "Start Time",
	"register":           "Register",
	"aboutEvent":         "About Event",

	// About page
	"aboutTitle":   "About Us",
	"aboutMission": "Our Mission",
	"aboutMissionText": "Crosul Speranței is more than just a running event. " +
		"It's a community movement that brings together people from all walks " +
		"of life to support those with disabilities in our community.",
	"aboutValues":         "Our Values",
	"aboutSolidarity":     "Solidarity",
	"aboutSolidarityText": "Supporting each other in achieving common goals",
	"aboutInclusion":      "Inclusion",
	"aboutInclusionText":  "Creating opportunities for everyone to participate",
	"aboutCommunity":      "Community",
	"aboutCommunityText":  "Building stronger connections within our local community",
	"aboutImpact":         "Impact",
	"aboutImpactText":     "Making a real difference in people's lives",
	"founded":             "Founded: 2017",
	"purpose":             "Purpose",
	"purposeText": "Promoting mass sports, cultural and sports values, " +
		"involvement in charitable activities and organizing community events " +
		"with the support of volunteers.",

	// Event 1 - Crosul Sperantei
	"event1Title":       "Crosul Sperantei Blaj - 8th Edition",
	"event1Date":        "October 4, 2025",
	"event1Location":    "Campia Libertatii, Blaj",
	"event1Description": "The main event of the year - the cross that brings the community together for a noble cause.",
	"event1DetailedDescription": "Join the 8th edition of Crosul Speranței, an event that " +
		"combines sports with charitable spirit. This cross-country run is not just a " +
		"competition, but a solidarity movement to support people with disabilities in our community.",

	// Event 2 - Coffee Run
	"event2Title":       "Coffee Run",
	"event2Date":        "Saturday, July 19 (Weekly)",
	"event2Location":    "15400 (See map for route)",
	"event2Description": "Relaxing 10km run for beginners - every Saturday morning.",
	"event2DetailedDescription": "Weekly relaxing event for beginners. Coffee Run is a 10km " +
		"running session that takes place every Saturday morning. Perfect for those who want " +
		"to start the day with energy and connect with the running community.",

	// Event 3 - Tempo Running
	"event3Title":       "1h Tempo Running Session Wednesday",
	"event3Date":        "Wednesday, July 16 (Weekly)",
	"event3Location":    "C.I.L. Stadium",
	"event3Description": "1-hour tempo training session - intermediate and beginner level.",
	"event3DetailedDescription": "Structured tempo training session designed to improve " +
		"running pace and endurance. Open to intermediate and beginner runners who want to " +
		"take their training to the next level.",

	// Event 4 - Easy Run
	"event4Title":       "Easy Run Mon & Fri",
	"event4Date":        "Monday and Friday, July 14 (Weekly)",
	"event4Location":    "Kime Market",
	"event4Description": "Easy run for beginners - every Monday and Friday evening.",
	"event4DetailedDescription": "Easy running sessions every Monday and Friday evening. " +
		"Perfect for beginners or recovery sessions. Relaxed and friendly atmosphere for all levels.",

	// Difficulty labels (Romanian keys from event data)
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
	"Incepator":    "Beginner",
	"Începător":    "Beginner",
	"Intermediar":  "Intermediate",
	"Avansat":      "Advanced",

	// Price labels (Romanian keys from event data)
	"copii":       "Children",
	"amatori":     "Amateurs",
	"semimaraton": "Half Marathon",
	"participare": "Participation",
	"Gratuit":     "Free",

	// Distance labels
	"Variază în funcție de nivel":  "Varies by level",
	"3-5 km (în funcție de nivel)": "3-5 km (depending on level)",
	"21 km (semimaraton)":          "21 km (half marathon)",

	// Pricing
	"currentPeriod":      "Current Period",
	"priceIncreaseIn":    "Prices increase in",
	"days":               "days",
	"nextPeriod":         "Next Period",
	"registrationClosed": "Registration is closed",

	// Footer
	"followUs":  "Follow us on:",
	"copyright": "© 2025 Crosul Speranței Blaj",

	// Common
	"free":          "Free",
	"ongoing":       "Ongoing",
	"eventNotFound": "Event not found",
}

var romanianTable = map[string]string{
	// Navigation & common
	"home":      "Acasă",
	"about":     "Despre Noi",
	"events":    "Evenimente",
	"contact":   "Contact",
	"details":   "DETALII",
	"allEvents": "Toate Evenimentele",

	// Home page
	"mainTitle":          "CROSUL SPERANTEI BLAJ",
	"subtitle":           "Editia a VIII-a",
	"featuredEventsTitle": "Evenimente în desfășurare",
	"featuredEventsNote": "Unele evenimente sunt în desfășurare și te poți alătura oricând!",
	"previousEventsTitle": "Evenimente Precedente",
	"partnersTitle":      "Partenerii Noștri",

	"loading": "Se încarcă...",

	// Events
	"eventDetails":       "Detalii Eveniment",
	"difficulty":         "Dificultate",
	"difficultyLevel":    "Nivel de Dificultate",
	"prices":             "Prețuri",
	"registrationPrices": "Prețuri Înregistrare",
	"distances":          "Distanțe",
	"availableDistances": "Distanțe Disponibile",
	"startTime":          "Ora de Start",
	"register":           "Înregistrează-te",
	"aboutEvent":         "Despre Eveniment",

	// About page
	"aboutTitle":   "Despre Noi",
	"aboutMission": "Misiunea Noastră",
	"aboutMissionText": "Crosul Speranței este mai mult decât un simplu eveniment de " +
		"alergare. Este o mișcare comunitară care aduce împreună oameni din toate sferele " +
		"vieții pentru a sprijini persoanele cu dizabilități din comunitatea noastră.",
	"aboutValues":         "Valorile Noastre",
	"aboutSolidarity":     "Solidaritate",
	"aboutSolidarityText": "Sprijinirea reciprocă pentru atingerea obiectivelor comune",
	"aboutInclusion":      "Incluziune",
	"aboutInclusionText":  "Crearea de oportunități pentru ca toată lumea să participe",
	"aboutCommunity":      "Comunitate",
	"aboutCommunityText":  "Construirea de legături mai puternice în comunitatea noastră locală",
	"aboutImpact":         "Impact",
	"aboutImpactText":     "Să facem o diferență reală în viețile oamenilor",
	"founded":             "Fondat: 2017",
	"purpose":             "Scop",
	"purposeText": "Promovarea sportului de masă, valorilor culturale și sportive, " +
		"implicarea în activități caritabile și organizarea de evenimente pentru " +
		"comunitate, cu sprijinul voluntarilor.",

	// Event 1 - Crosul Sperantei
	"event1Title":       "Crosul Sperantei Blaj - Editia a VIII-a",
	"event1Date":        "4 Octombrie 2025",
	"event1Location":    "Campia Libertatii, Blaj",
	"event1Description": "Evenimentul principal al anului - crosul care aduna comunitatea pentru o cauza nobila.",
	"event1DetailedDescription": "Alătură-te celei de-a VIII-a ediții a Crosului Speranței, " +
		"un eveniment care combină sportul cu spiritul caritabil. Acest cros nu este doar o " +
		"competiție, ci o mișcare de solidaritate pentru susținerea persoanelor cu " +
		"dizabilități din comunitatea noastră.",

	// Event 2 - Coffee Run
	"event2Title":       "Coffee Run",
	"event2Date":        "Sâmbătă, 19 Iulie (Săptămânal)",
	"event2Location":    "15400 (Vezi harta pentru rută)",
	"event2Description": "Alergare relaxantă de 10km pentru începători - în fiecare sâmbătă dimineața.",
	"event2DetailedDescription": "Eveniment săptămânal relaxant pentru începători. Coffee Run " +
		"este o sesiune de alergare de 10km care are loc în fiecare sâmbătă dimineața. " +
		"Perfect pentru cei care vor să înceapă ziua cu energie și să se conecteze cu " +
		"comunitatea de alergători.",

	// Event 3 - Tempo Running
	"event3Title":       "1h Tempo Running Session Wednesday",
	"event3Date":        "Miercuri, 16 Iulie (Săptămânal)",
	"event3Location":    "Stadionul C.I.L.",
	"event3Description": "Sesiune de antrenament tempo de 1 oră - nivel intermediar și începător.",
	"event3DetailedDescription": "Sesiune de antrenament tempo structurat, concepută pentru " +
		"îmbunătățirea ritmului și rezistenței la alergare. Deschis alergătorilor intermediari " +
		"și începători care doresc să-și ducă antrenamentul la următorul nivel.",

	// Event 4 - Easy Run
	"event4Title":       "Easy Run Mon & Fri",
	"event4Date":        "Luni și Vineri, 14 Iulie (Săptămânal)",
	"event4Location":    "Kime Market",
	"event4Description": "Alergare ușoară pentru începători - în fiecare luni și vineri seara.",
	"event4DetailedDescription": "Sesiuni de alergare ușoară în fiecare luni și vineri seara. " +
		"Perfecte pentru începători sau pentru sesiuni de recuperare. Atmosferă relaxantă și " +
		"prietenească pentru toți nivelurile.",

	// Difficulty labels
	"beginner":     "Începător",
	"intermediate": "Intermediar",
	"advanced":     "Avansat",
	"Incepator":    "Începător",
	"Începător":    "Începător",
	"Intermediar":  "Intermediar",
	"Avansat":      "Avansat",

	// Price labels
	"copii":       "Copii",
	"amatori":     "Amatori",
	"semimaraton": "Semimaraton",
	"participare": "Participare",
	"Gratuit":     "Gratuit",

	// Distance labels
	"Variază în funcție de nivel":  "Variază în funcție de nivel",
	"3-5 km (în funcție de nivel)": "3-5 km (în funcție de nivel)",
	"21 km (semimaraton)":          "21 km (semimaraton)",

	// Pricing
	"currentPeriod":      "Perioada Curentă",
	"priceIncreaseIn":    "Prețurile cresc în",
	"days":               "zile",
	"nextPeriod":         "Următoarea Perioadă",
	"registrationClosed": "Înregistrările sunt închise",

	// Footer
	"followUs":  "Urmăriți-ne pe:",
	"copyright": "© 2025 Crosul Speranței Blaj",

	// Common
	"free":          "Gratuit",
	"ongoing":       "În desfășurare",
	"eventNotFound": "Evenimentul nu a fost găsit",
}
