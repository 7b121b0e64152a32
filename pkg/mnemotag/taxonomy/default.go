package taxonomy

// Default returns the built-in memory-studies matrix taxonomy: five
// publication periods, twenty disciplines, sixteen memory carriers, and the
// concept tag vocabulary, together with the keyword index used by the repair
// layer.
func Default() *Taxonomy {
	t, err := New(defaultCategories(), defaultKeywords())
	if err != nil {
		// The built-in data is validated by tests; reaching here is a bug.
		panic(err)
	}
	return t
}

func defaultCategories() []CategoryDef {
	return []CategoryDef{
		{
			ID:    Time,
			Name:  "Time of Publication",
			About: "The period in which the article or book was published",
			Tags:  []string{"T1", "T2", "T3", "T4", "T5"},
			Descriptions: map[string]string{
				"T1": "400 BCE to 1859",
				"T2": "1860 to 1949",
				"T3": "1950 to 1989",
				"T4": "1990 to 2010",
				"T5": "2011 to Present",
			},
		},
		{
			ID:    Discipline,
			Name:  "Discipline",
			About: "What discipline produced the publication, from author affiliation, journal, and methods",
			Tags: []string{
				"DSOC", "DHIS", "DSPY", "DNEU", "DPOL", "DANT", "DGEO",
				"DARC", "DLIT", "DCUL", "DLAW", "DPHI", "DPSY", "DMED",
				"DEDU", "DHUM", "DSS", "DMU", "DHE", "DAR",
			},
			Descriptions: map[string]string{
				"DSOC": "Sociology",
				"DHIS": "History",
				"DSPY": "Social Psychology",
				"DNEU": "Neuroscience",
				"DPOL": "Political Science (subtypes: IR, Human rights, Transitional Justice)",
				"DANT": "Anthropology",
				"DGEO": "Geography",
				"DARC": "Archaeology",
				"DLIT": "Literature",
				"DCUL": "Cultural Studies",
				"DLAW": "Legal Studies",
				"DPHI": "Philosophy",
				"DPSY": "Psychology",
				"DMED": "Film/Media Studies",
				"DEDU": "Education",
				"DHUM": "Humanities",
				"DSS":  "Social Sciences (includes Economics, Criminology, Social Work)",
				"DMU":  "Museum Studies",
				"DHE":  "Heritage Studies",
				"DAR":  "Archival Studies",
			},
		},
		{
			ID:    MemoryCarrier,
			Name:  "Memory Carriers",
			About: "By what means of memory the publication is focused on",
			Tags: []string{
				"MCSO", "MCLI", "MCFI", "MCT", "MCAR", "MCPH", "MCC",
				"MCMO", "MCA", "MCB", "MCME", "MCLA", "MCED", "MCMU",
				"MCF", "MCNAT",
			},
			Descriptions: map[string]string{
				"MCSO":  "Social media",
				"MCLI":  "Literature",
				"MCFI":  "Film",
				"MCT":   "Testimony",
				"MCAR":  "Art",
				"MCPH":  "Photography",
				"MCC":   "Commemorations",
				"MCMO":  "Monuments",
				"MCA":   "Activists",
				"MCB":   "Brain",
				"MCME":  "Memory scholars",
				"MCLA":  "Law",
				"MCED":  "Educational",
				"MCMU":  "Museums",
				"MCF":   "Family",
				"MCNAT": "Nation",
			},
		},
		{
			ID:    ConceptTags,
			Name:  "Concept Tags",
			About: "What memory concept(s) the publication is most concerned with",
			Tags: []string{
				"CTArchives", "CTAutobiographicalMemory", "CTAgonisticMemory", "CTAmnesia", "CTAestheticMemory",
				"CTBanalMnemonics",
				"CTCanons", "CTCommunicativeMemory", "CTCulturalTrauma", "CTCollectiveMemory", "CTCulturalMemory",
				"CTCosmopolitanMemory", "CTCommemoration", "CTCatastrophicMemory", "CTCounterMemory",
				"CTDialogical", "CTDeclarativeMemory", "CTDigitalMemory", "CTDutyToRemember",
				"CTEngrams", "CTEpisodicMemory", "CTExplicitMemory", "CTEntangledMemory",
				"CTFamilyMemory", "CTFlashbulbMemory", "CTFlashback", "CTForgetting", "CTForgettingCurve", "CTFalseMemory",
				"CTGenreMemory", "CTGlobitalMemory", "CTGlobalMemory", "CTGenerationalMemory",
				"CTHeritage", "CTHistoricalMemory", "CTHyperthymesia",
				"CTIdentity", "CTImplicitMemory", "CTIntergenerationalTransmissions", "CTIconicMemory", "CTImaginativeReconstruction",
				"CTLongueDuree",
				"CTMultidirectionalMemory", "CTMnemonicSecurity", "CTMilieuDeMemoire", "CTMemoryLaws", "CTMnemohistory",
				"CTMemoryConsolidation", "CTMemoryRetrieval", "CTMemoryEncoding", "CTMemoryStorage", "CTMemoryTrace",
				"CTMemorySpan", "CTMemoryDistortion", "CTMemoryAccuracy", "CTMemoryBias", "CTMemoryEnhancement",
				"CTMemorySuppression", "CTMemorySchemas", "CTMnemonics", "CTMemoryPolitics", "CTMnemonicCommunities",
				"CTMnemonicSocialization", "CTMemoryEthics", "CTMemoryPractices", "CTMnemonicStandoff",
				"CTNationalMemory", "CTNonContemporaneity",
				"CTOfficialMemory",
				"CTParticularism", "CTPrivateMemory", "CTPublicMemory", "CTPathDependency", "CTProceduralMemory",
				"CTProstheticMemory", "CTPostColonialMemory", "CTProspectiveMemory", "CTProfaneMemory", "CTPostMemory",
				"CTRealmsOfMemory", "CTRegret", "CTRestitution", "CTReparations", "CTRedress", "CTRepressedMemory",
				"CTRecoveredMemory", "CTRetrospectiveMemory", "CTRevisionistMemory", "CTReligiousMemory",
				"CTSemanticMemory", "CTSocialFrameworks", "CTSlowMemory", "CTSocialMemory", "CTScreenMemory",
				"CTSensoryMemory", "CTSourceMemory", "CTSacredMemory",
				"CTTrauma", "CTTradition", "CTTravellingMemory", "CTTransnationalMemory", "CTTransculturalMemory", "CTTransoceanicMemory",
				"CTUniversalism",
				"CTVernacularMemory",
				"CTWorkingMemory",
			},
			Descriptions: map[string]string{
				"CTArchives":                       "Archives",
				"CTAutobiographicalMemory":         "Autobiographical Memory",
				"CTAgonisticMemory":                "Agonistic Memory",
				"CTAmnesia":                        "Amnesia",
				"CTAestheticMemory":                "Aesthetic Memory",
				"CTBanalMnemonics":                 "Banal Mnemonics",
				"CTCanons":                         "Canons",
				"CTCommunicativeMemory":            "Communicative Memory",
				"CTCulturalTrauma":                 "Cultural Trauma",
				"CTCollectiveMemory":               "Collective Memory",
				"CTCulturalMemory":                 "Cultural Memory",
				"CTCosmopolitanMemory":             "Cosmopolitan Memory",
				"CTCommemoration":                  "Commemoration",
				"CTCatastrophicMemory":             "Catastrophic Memory",
				"CTCounterMemory":                  "Counter-Memory",
				"CTDialogical":                     "Dialogical",
				"CTDeclarativeMemory":              "Declarative Memory",
				"CTDigitalMemory":                  "Digital Memory",
				"CTDutyToRemember":                 "Duty to Remember",
				"CTEngrams":                        "Engrams",
				"CTEpisodicMemory":                 "Episodic Memory",
				"CTExplicitMemory":                 "Explicit Memory",
				"CTEntangledMemory":                "Entangled Memory",
				"CTFamilyMemory":                   "Family Memory",
				"CTFlashbulbMemory":                "Flashbulb Memory",
				"CTFlashback":                      "Flashback",
				"CTForgetting":                     "Forgetting",
				"CTForgettingCurve":                "Forgetting Curve",
				"CTFalseMemory":                    "False Memory",
				"CTGenreMemory":                    "Genre Memory",
				"CTGlobitalMemory":                 "Globital Memory",
				"CTGlobalMemory":                   "Global Memory",
				"CTGenerationalMemory":             "Generational Memory",
				"CTHeritage":                       "Heritage",
				"CTHistoricalMemory":               "Historical Memory",
				"CTHyperthymesia":                  "Hyperthymesia",
				"CTIdentity":                       "Identity",
				"CTImplicitMemory":                 "Implicit Memory",
				"CTIntergenerationalTransmissions": "Intergenerational Transmissions",
				"CTIconicMemory":                   "Iconic Memory",
				"CTImaginativeReconstruction":      "Imaginative Reconstruction",
				"CTLongueDuree":                    "Longue Durée",
				"CTMultidirectionalMemory":         "Multidirectional Memory",
				"CTMnemonicSecurity":               "Mnemonic Security",
				"CTMilieuDeMemoire":                "Milieu de Memoire",
				"CTMemoryLaws":                     "Memory Laws",
				"CTMnemohistory":                   "Mnemohistory",
				"CTMemoryConsolidation":            "Memory Consolidation",
				"CTMemoryRetrieval":                "Memory Retrieval",
				"CTMemoryEncoding":                 "Memory Encoding",
				"CTMemoryStorage":                  "Memory Storage",
				"CTMemoryTrace":                    "Memory Trace",
				"CTMemorySpan":                     "Memory Span",
				"CTMemoryDistortion":               "Memory Distortion",
				"CTMemoryAccuracy":                 "Memory Accuracy",
				"CTMemoryBias":                     "Memory Bias",
				"CTMemoryEnhancement":              "Memory Enhancement",
				"CTMemorySuppression":              "Memory Suppression",
				"CTMemorySchemas":                  "Memory Schemas",
				"CTMnemonics":                      "Mnemonics",
				"CTMemoryPolitics":                 "Memory Politics",
				"CTMnemonicCommunities":            "Mnemonic Communities",
				"CTMnemonicSocialization":          "Mnemonic Socialization",
				"CTMemoryEthics":                   "Memory Ethics",
				"CTMemoryPractices":                "Memory Practices",
				"CTMnemonicStandoff":               "Mnemonic Standoff",
				"CTNationalMemory":                 "National Memory",
				"CTNonContemporaneity":             "Non-Contemporaneity",
				"CTOfficialMemory":                 "Official Memory",
				"CTParticularism":                  "Particularism",
				"CTPrivateMemory":                  "Private Memory",
				"CTPublicMemory":                   "Public Memory",
				"CTPathDependency":                 "Path-Dependency",
				"CTProceduralMemory":               "Procedural Memory",
				"CTProstheticMemory":               "Prosthetic Memory",
				"CTPostColonialMemory":             "Post-Colonial Memory",
				"CTProspectiveMemory":              "Prospective Memory",
				"CTProfaneMemory":                  "Profane Memory",
				"CTPostMemory":                     "Post-Memory",
				"CTRealmsOfMemory":                 "Realms of Memory",
				"CTRegret":                         "Regret",
				"CTRestitution":                    "Restitution",
				"CTReparations":                    "Reparations",
				"CTRedress":                        "Redress",
				"CTRepressedMemory":                "Repressed Memory",
				"CTRecoveredMemory":                "Recovered Memory",
				"CTRetrospectiveMemory":            "Retrospective Memory",
				"CTRevisionistMemory":              "Revisionist Memory",
				"CTReligiousMemory":                "Religious Memory",
				"CTSemanticMemory":                 "Semantic Memory",
				"CTSocialFrameworks":               "Social Frameworks",
				"CTSlowMemory":                     "Slow Memory",
				"CTSocialMemory":                   "Social Memory",
				"CTScreenMemory":                   "Screen Memory",
				"CTSensoryMemory":                  "Sensory Memory",
				"CTSourceMemory":                   "Source Memory",
				"CTSacredMemory":                   "Sacred Memory",
				"CTTrauma":                         "Trauma",
				"CTTradition":                      "Tradition",
				"CTTravellingMemory":               "Traveling Memory",
				"CTTransnationalMemory":            "Transnational Memory",
				"CTTransculturalMemory":            "Transcultural Memory",
				"CTTransoceanicMemory":             "Transoceanic Memory",
				"CTUniversalism":                   "Universalism",
				"CTVernacularMemory":               "Vernacular Memory",
				"CTWorkingMemory":                  "Working Memory",
			},
		},
	}
}
