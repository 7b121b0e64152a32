package taxonomy

// defaultKeywords is the built-in keyword index: lowercase trigger phrases
// per tag, consulted only by the repair layer.
func defaultKeywords() KeywordIndex {
	return KeywordIndex{
		Time: {
			"T1": {"ancient", "classical", "antiquity", "rome", "greece", "bce", "400 bce", "500 bce", "before 1860", "ancient times"},
			"T2": {"1860", "1949", "nineteenth century", "industrial revolution", "early modern"},
			"T3": {"1950", "1989", "post-war", "cold war", "mid twentieth", "modern era"},
			"T4": {"1990", "2010", "late twentieth", "early twenty-first", "late modern"},
			"T5": {"2011", "present day", "twenty-first century", "contemporary era", "current period", "recent years"},
		},
		Discipline: {
			"DSOC": {"sociology", "social", "sociological", "society", "social theory", "sociologist"},
			"DHIS": {"history", "historical", "historian", "historiography", "past"},
			"DSPY": {"social psychology", "psychological", "behavior", "social behavior", "group psychology"},
			"DNEU": {"neuroscience", "neural", "brain", "cognitive science", "neuro", "neurological"},
			"DPOL": {"political science", "politics", "government", "policy", "political", "international relations", "human rights", "transitional justice"},
			"DANT": {"anthropology", "anthropological", "cultural anthropology", "ethnography", "anthropologist"},
			"DGEO": {"geography", "geographical", "spatial", "place", "location", "geographer"},
			"DARC": {"archaeology", "archaeological", "excavation", "artifacts", "material", "archaeologist"},
			"DLIT": {"literature", "literary", "text", "narrative", "fiction", "literary studies"},
			"DCUL": {"cultural studies", "culture", "cultural", "cultural theory"},
			"DLAW": {"legal studies", "law", "legal", "jurisprudence", "justice", "legal scholar"},
			"DPHI": {"philosophy", "philosophical", "ethics", "metaphysics", "epistemology", "philosopher"},
			"DPSY": {"psychology", "psychological", "mental health", "therapy", "psychologist"},
			"DMED": {"film studies", "media studies", "film", "cinema", "media", "film scholar"},
			"DEDU": {"education", "educational", "pedagogy", "learning", "teaching", "educational studies"},
			"DHUM": {"humanities", "humanistic", "arts", "humanities studies", "humanist"},
			"DSS":  {"social sciences", "social science", "interdisciplinary", "economics", "criminology", "social work"},
			"DMU":  {"museum studies", "museum", "curation", "exhibition"},
			"DHE":  {"heritage studies", "heritage", "cultural heritage", "heritage scholar"},
			"DAR":  {"archival studies", "archives", "archival", "archivist"},
		},
		MemoryCarrier: {
			"MCSO":  {"social media", "social", "media", "platform", "digital social"},
			"MCLI":  {"literature", "text", "book", "writing", "narrative", "literary"},
			"MCFI":  {"film", "cinema", "movie", "motion picture", "cinematic"},
			"MCT":   {"testimony", "witness", "oral history", "testimonial", "witness account"},
			"MCAR":  {"art", "artistic", "visual art", "painting", "sculpture", "artwork"},
			"MCPH":  {"photography", "photo", "image", "visual", "picture", "photographic"},
			"MCC":   {"commemorations", "commemoration", "ceremony", "ritual", "memorial service"},
			"MCMO":  {"monuments", "monument", "memorial", "statue", "memorial structure"},
			"MCA":   {"activists", "activism", "social movement", "protest", "activist"},
			"MCB":   {"brain", "neural", "cognitive", "neurological", "brain function"},
			"MCME":  {"memory scholars", "memory studies", "memory researcher", "memory academic"},
			"MCLA":  {"law", "legal", "legal system", "jurisprudence", "legal framework"},
			"MCED":  {"educational", "education", "school", "learning", "pedagogy"},
			"MCMU":  {"museums", "museum", "exhibition", "display", "curation"},
			"MCF":   {"family", "domestic", "household", "kinship", "personal", "family memory"},
			"MCNAT": {"nation", "national", "state", "government", "national identity"},
		},
		ConceptTags: {
			"CTArchives":                       {"archives", "archival", "documentation", "records", "archival memory"},
			"CTAutobiographicalMemory":         {"autobiographical memory", "personal memory", "life story", "autobiography"},
			"CTAgonisticMemory":                {"agonistic memory", "conflict memory", "contestation", "memory conflict"},
			"CTAmnesia":                        {"amnesia", "memory loss", "forgetting", "memory impairment"},
			"CTAestheticMemory":                {"aesthetic memory", "artistic memory", "beauty memory", "aesthetic experience"},
			"CTBanalMnemonics":                 {"banal mnemonics", "everyday memory", "mundane memory", "ordinary memory"},
			"CTCanons":                         {"canons", "canonical", "tradition", "classical", "canonical memory"},
			"CTCommunicativeMemory":            {"communicative memory", "communication", "memory communication"},
			"CTCulturalTrauma":                 {"cultural trauma", "trauma culture", "collective trauma"},
			"CTCollectiveMemory":               {"collective memory", "shared memory", "group memory", "social memory"},
			"CTCulturalMemory":                 {"cultural memory", "cultural heritage", "cultural tradition"},
			"CTCosmopolitanMemory":             {"cosmopolitan memory", "global memory", "world memory"},
			"CTCommemoration":                  {"commemoration", "memorial", "remembrance", "anniversary"},
			"CTCatastrophicMemory":             {"catastrophic memory", "disaster memory", "catastrophe"},
			"CTCounterMemory":                  {"counter memory", "oppositional memory", "resistance memory"},
			"CTDialogical":                     {"dialogical", "dialogue", "conversation", "dialogical memory"},
			"CTDeclarativeMemory":              {"declarative memory", "explicit memory", "conscious memory"},
			"CTDigitalMemory":                  {"digital memory", "online memory", "virtual memory", "digital"},
			"CTDutyToRemember":                 {"duty to remember", "obligation", "memory obligation"},
			"CTEngrams":                        {"engrams", "memory traces", "neural patterns", "memory imprint"},
			"CTEpisodicMemory":                 {"episodic memory", "event memory", "episode memory"},
			"CTExplicitMemory":                 {"explicit memory", "conscious memory", "declarative memory"},
			"CTEntangledMemory":                {"entangled memory", "interconnected memory", "memory entanglement"},
			"CTFamilyMemory":                   {"family memory", "domestic memory", "kinship memory"},
			"CTFlashbulbMemory":                {"flashbulb memory", "vivid memory", "intense memory"},
			"CTFlashback":                      {"flashback", "memory flashback", "intrusive memory"},
			"CTForgetting":                     {"forgetting", "memory loss", "oblivion", "memory decay"},
			"CTForgettingCurve":                {"forgetting curve", "memory decay", "memory retention"},
			"CTFalseMemory":                    {"false memory", "memory error", "inaccurate memory"},
			"CTGenreMemory":                    {"genre memory", "memory genre", "memory type"},
			"CTGlobitalMemory":                 {"globital memory", "global digital", "digital global"},
			"CTGlobalMemory":                   {"global memory", "world memory", "international memory"},
			"CTGenerationalMemory":             {"generational memory", "generation memory", "intergenerational"},
			"CTHeritage":                       {"heritage", "cultural heritage", "inheritance", "heritage memory"},
			"CTHistoricalMemory":               {"historical memory", "memory of history", "past memory"},
			"CTHyperthymesia":                  {"hyperthymesia", "exceptional memory", "superior memory"},
			"CTIdentity":                       {"identity", "memory identity", "identity formation"},
			"CTImplicitMemory":                 {"implicit memory", "unconscious memory", "automatic memory"},
			"CTIntergenerationalTransmissions": {"intergenerational transmission", "generation transmission"},
			"CTIconicMemory":                   {"iconic memory", "visual memory", "image memory"},
			"CTImaginativeReconstruction":      {"imaginative reconstruction", "creative memory"},
			"CTLongueDuree":                    {"longue durée", "long term", "enduring memory"},
			"CTMultidirectionalMemory":         {"multidirectional memory", "multi-directional", "memory flows"},
			"CTMnemonicSecurity":               {"mnemonic security", "memory security", "memory protection"},
			"CTMilieuDeMemoire":                {"milieu de mémoire", "memory environment", "memory space"},
			"CTMemoryLaws":                     {"memory laws", "legal memory", "memory legislation"},
			"CTMnemohistory":                   {"mnemohistory", "history of memory", "memory historiography"},
			"CTMemoryConsolidation":            {"memory consolidation", "memory strengthening"},
			"CTMemoryRetrieval":                {"memory retrieval", "recall", "remembering"},
			"CTMemoryEncoding":                 {"memory encoding", "memory formation", "memory creation"},
			"CTMemoryStorage":                  {"memory storage", "memory preservation", "memory retention"},
			"CTMemoryTrace":                    {"memory trace", "neural trace", "memory imprint"},
			"CTMemorySpan":                     {"memory span", "memory capacity", "memory duration"},
			"CTMemoryDistortion":               {"memory distortion", "memory alteration", "memory error"},
			"CTMemoryAccuracy":                 {"memory accuracy", "memory precision", "memory reliability"},
			"CTMemoryBias":                     {"memory bias", "memory distortion", "memory error"},
			"CTMemoryEnhancement":              {"memory enhancement", "memory improvement", "memory training"},
			"CTMemorySuppression":              {"memory suppression", "memory inhibition", "forgetting"},
			"CTMemorySchemas":                  {"memory schemas", "memory frameworks", "memory organization"},
			"CTMnemonics":                      {"mnemonics", "memory techniques", "memory strategies"},
			"CTMemoryPolitics":                 {"memory politics", "political memory", "memory policy"},
			"CTMnemonicCommunities":            {"mnemonic communities", "memory communities"},
			"CTMnemonicSocialization":          {"mnemonic socialization", "memory learning"},
			"CTMemoryEthics":                   {"memory ethics", "ethical memory", "memory morality"},
			"CTMemoryPractices":                {"memory practices", "memory activities", "memory rituals"},
			"CTMnemonicStandoff":               {"mnemonic standoff", "memory conflict", "memory dispute"},
			"CTNationalMemory":                 {"national memory", "state memory", "country memory"},
			"CTNonContemporaneity":             {"non-contemporaneity", "temporal disjunction"},
			"CTOfficialMemory":                 {"official memory", "institutional memory", "state memory"},
			"CTParticularism":                  {"particularism", "specific memory", "particular memory"},
			"CTPrivateMemory":                  {"private memory", "personal memory", "individual memory"},
			"CTPublicMemory":                   {"public memory", "collective memory", "shared memory"},
			"CTPathDependency":                 {"path dependency", "memory paths", "memory trajectories"},
			"CTProceduralMemory":               {"procedural memory", "skill memory", "habit memory"},
			"CTProstheticMemory":               {"prosthetic memory", "external memory", "memory aids"},
			"CTPostColonialMemory":             {"post-colonial memory", "colonial memory", "imperial memory"},
			"CTProspectiveMemory":              {"prospective memory", "future memory", "memory planning"},
			"CTProfaneMemory":                  {"profane memory", "secular memory", "non-religious memory"},
			"CTPostMemory":                     {"post-memory", "memory after", "memory transmission"},
			"CTRealmsOfMemory":                 {"realms of memory", "memory domains", "memory spheres"},
			"CTRegret":                         {"regret", "memory regret", "remorse"},
			"CTRestitution":                    {"restitution", "memory restitution", "compensation"},
			"CTReparations":                    {"reparations", "memory reparations", "compensation"},
			"CTRedress":                        {"redress", "memory redress", "justice"},
			"CTRepressedMemory":                {"repressed memory", "suppressed memory", "hidden memory"},
			"CTRecoveredMemory":                {"recovered memory", "retrieved memory", "restored memory"},
			"CTRetrospectiveMemory":            {"retrospective memory", "looking back", "memory review"},
			"CTRevisionistMemory":              {"revisionist memory", "memory revision", "memory change"},
			"CTReligiousMemory":                {"religious memory", "sacred memory", "spiritual memory"},
			"CTSemanticMemory":                 {"semantic memory", "knowledge memory", "fact memory"},
			"CTSocialFrameworks":               {"social frameworks", "memory frameworks", "social structures"},
			"CTSlowMemory":                     {"slow memory", "gradual memory", "memory time"},
			"CTSocialMemory":                   {"social memory", "memory society", "social remembrance"},
			"CTScreenMemory":                   {"screen memory", "protective memory", "memory defense"},
			"CTSensoryMemory":                  {"sensory memory", "sensory recall", "perceptual memory"},
			"CTSourceMemory":                   {"source memory", "memory source", "origin memory"},
			"CTSacredMemory":                   {"sacred memory", "holy memory", "spiritual memory"},
			"CTTrauma":                         {"trauma", "traumatic memory", "trauma studies"},
			"CTTradition":                      {"tradition", "traditional memory", "customary memory"},
			"CTTravellingMemory":               {"traveling memory", "mobile memory", "memory movement"},
			"CTTransnationalMemory":            {"transnational memory", "cross-national memory"},
			"CTTransculturalMemory":            {"transcultural memory", "cross-cultural memory"},
			"CTTransoceanicMemory":             {"transoceanic memory", "ocean memory", "maritime memory"},
			"CTUniversalism":                   {"universalism", "universal memory", "global memory"},
			"CTVernacularMemory":               {"vernacular memory", "local memory", "folk memory"},
			"CTWorkingMemory":                  {"working memory", "short-term memory", "immediate memory"},
		},
	}
}
