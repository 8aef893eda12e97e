// Package seed holds the built-in English–Turkish word list used to
// initialize an empty word store. It is fixed data: once a user's store
// has entries, nothing here is consulted again.
package seed

// Entry is one seed word pair.
type Entry struct {
	ForeignTerm string
	NativeTerm  string
	Level       string
}

// Catalog returns the full seed list, roughly forty pairs per CEFR level.
func Catalog() []Entry {
	return catalog
}

var catalog = []Entry{
	// A1
	{"apple", "elma", "A1"},
	{"water", "su", "A1"},
	{"bread", "ekmek", "A1"},
	{"milk", "süt", "A1"},
	{"house", "ev", "A1"},
	{"car", "araba", "A1"},
	{"dog", "köpek", "A1"},
	{"cat", "kedi", "A1"},
	{"book", "kitap", "A1"},
	{"pen", "kalem", "A1"},
	{"table", "masa", "A1"},
	{"chair", "sandalye", "A1"},
	{"door", "kapı", "A1"},
	{"window", "pencere", "A1"},
	{"phone", "telefon", "A1"},
	{"school", "okul", "A1"},
	{"teacher", "öğretmen", "A1"},
	{"student", "öğrenci", "A1"},
	{"friend", "arkadaş", "A1"},
	{"family", "aile", "A1"},
	{"mother", "anne", "A1"},
	{"father", "baba", "A1"},
	{"brother", "erkek kardeş", "A1"},
	{"sister", "kız kardeş", "A1"},
	{"food", "yemek", "A1"},
	{"drink", "içecek", "A1"},
	{"city", "şehir", "A1"},
	{"street", "sokak", "A1"},
	{"shop", "mağaza", "A1"},
	{"money", "para", "A1"},
	{"time", "zaman", "A1"},
	{"day", "gün", "A1"},
	{"night", "gece", "A1"},
	{"morning", "sabah", "A1"},
	{"good", "iyi", "A1"},
	{"bad", "kötü", "A1"},
	{"big", "büyük", "A1"},
	{"small", "küçük", "A1"},
	{"new", "yeni", "A1"},
	{"old", "eski", "A1"},

	// A2
	{"answer", "cevap", "A2"},
	{"question", "soru", "A2"},
	{"problem", "problem", "A2"},
	{"idea", "fikir", "A2"},
	{"job", "iş", "A2"},
	{"work", "çalışmak", "A2"},
	{"office", "ofis", "A2"},
	{"company", "şirket", "A2"},
	{"meeting", "toplantı", "A2"},
	{"plan", "plan", "A2"},
	{"travel", "seyahat etmek", "A2"},
	{"holiday", "tatil", "A2"},
	{"ticket", "bilet", "A2"},
	{"hotel", "otel", "A2"},
	{"airport", "havaalanı", "A2"},
	{"weather", "hava durumu", "A2"},
	{"season", "mevsim", "A2"},
	{"temperature", "sıcaklık", "A2"},
	{"rain", "yağmur", "A2"},
	{"snow", "kar", "A2"},
	{"wind", "rüzgar", "A2"},
	{"cloud", "bulut", "A2"},
	{"market", "pazar", "A2"},
	{"price", "fiyat", "A2"},
	{"cheap", "ucuz", "A2"},
	{"expensive", "pahalı", "A2"},
	{"early", "erken", "A2"},
	{"late", "geç", "A2"},
	{"busy", "meşgul", "A2"},
	{"tired", "yorgun", "A2"},
	{"healthy", "sağlıklı", "A2"},
	{"sick", "hasta", "A2"},
	{"doctor", "doktor", "A2"},
	{"hospital", "hastane", "A2"},
	{"medicine", "ilaç", "A2"},
	{"kitchen", "mutfak", "A2"},
	{"bedroom", "yatak odası", "A2"},
	{"garden", "bahçe", "A2"},
	{"neighbor", "komşu", "A2"},
	{"village", "köy", "A2"},

	// B1
	{"experience", "deneyim", "B1"},
	{"opportunity", "fırsat", "B1"},
	{"decision", "karar", "B1"},
	{"advice", "tavsiye", "B1"},
	{"opinion", "görüş", "B1"},
	{"knowledge", "bilgi", "B1"},
	{"skill", "beceri", "B1"},
	{"goal", "hedef", "B1"},
	{"success", "başarı", "B1"},
	{"failure", "başarısızlık", "B1"},
	{"improve", "geliştirmek", "B1"},
	{"explain", "açıklamak", "B1"},
	{"describe", "tanımlamak", "B1"},
	{"compare", "karşılaştırmak", "B1"},
	{"suggest", "önermek", "B1"},
	{"promise", "söz vermek", "B1"},
	{"complain", "şikayet etmek", "B1"},
	{"argue", "tartışmak", "B1"},
	{"environment", "çevre", "B1"},
	{"pollution", "kirlilik", "B1"},
	{"government", "hükümet", "B1"},
	{"society", "toplum", "B1"},
	{"culture", "kültür", "B1"},
	{"tradition", "gelenek", "B1"},
	{"education", "eğitim", "B1"},
	{"research", "araştırma", "B1"},
	{"science", "bilim", "B1"},
	{"technology", "teknoloji", "B1"},
	{"invention", "buluş", "B1"},
	{"discovery", "keşif", "B1"},
	{"relationship", "ilişki", "B1"},
	{"behavior", "davranış", "B1"},
	{"emotion", "duygu", "B1"},
	{"memory", "hafıza", "B1"},
	{"attention", "dikkat", "B1"},
	{"patience", "sabır", "B1"},
	{"courage", "cesaret", "B1"},
	{"honest", "dürüst", "B1"},
	{"polite", "kibar", "B1"},
	{"generous", "cömert", "B1"},

	// B2
	{"responsibility", "sorumluluk", "B2"},
	{"requirement", "gereklilik", "B2"},
	{"development", "gelişme", "B2"},
	{"negotiation", "müzakere", "B2"},
	{"agreement", "anlaşma", "B2"},
	{"contract", "sözleşme", "B2"},
	{"employee", "çalışan", "B2"},
	{"employer", "işveren", "B2"},
	{"salary", "maaş", "B2"},
	{"interview", "mülakat", "B2"},
	{"application", "başvuru", "B2"},
	{"qualification", "nitelik", "B2"},
	{"efficient", "verimli", "B2"},
	{"reliable", "güvenilir", "B2"},
	{"flexible", "esnek", "B2"},
	{"ambitious", "hırslı", "B2"},
	{"confident", "özgüvenli", "B2"},
	{"anxious", "endişeli", "B2"},
	{"disappointed", "hayal kırıklığına uğramış", "B2"},
	{"satisfied", "memnun", "B2"},
	{"convince", "ikna etmek", "B2"},
	{"persuade", "razı etmek", "B2"},
	{"emphasize", "vurgulamak", "B2"},
	{"estimate", "tahmin etmek", "B2"},
	{"evaluate", "değerlendirmek", "B2"},
	{"analyze", "analiz etmek", "B2"},
	{"summarize", "özetlemek", "B2"},
	{"interpret", "yorumlamak", "B2"},
	{"assume", "varsaymak", "B2"},
	{"conclude", "sonuca varmak", "B2"},
	{"evidence", "kanıt", "B2"},
	{"argument", "argüman", "B2"},
	{"perspective", "bakış açısı", "B2"},
	{"consequence", "sonuç", "B2"},
	{"circumstance", "koşul", "B2"},
	{"obstacle", "engel", "B2"},
	{"challenge", "zorluk", "B2"},
	{"strategy", "strateji", "B2"},
	{"priority", "öncelik", "B2"},
	{"resource", "kaynak", "B2"},

	// C1
	{"ambiguous", "belirsiz", "C1"},
	{"coherent", "tutarlı", "C1"},
	{"comprehensive", "kapsamlı", "C1"},
	{"deliberate", "kasıtlı", "C1"},
	{"explicit", "açık", "C1"},
	{"implicit", "örtük", "C1"},
	{"inevitable", "kaçınılmaz", "C1"},
	{"negligible", "ihmal edilebilir", "C1"},
	{"plausible", "makul", "C1"},
	{"profound", "derin", "C1"},
	{"subtle", "ince", "C1"},
	{"tangible", "somut", "C1"},
	{"abstract", "soyut", "C1"},
	{"arbitrary", "keyfi", "C1"},
	{"coincidence", "tesadüf", "C1"},
	{"contradiction", "çelişki", "C1"},
	{"controversy", "ihtilaf", "C1"},
	{"dilemma", "ikilem", "C1"},
	{"hypothesis", "hipotez", "C1"},
	{"phenomenon", "olgu", "C1"},
	{"paradox", "paradoks", "C1"},
	{"bias", "önyargı", "C1"},
	{"consensus", "uzlaşma", "C1"},
	{"criterion", "ölçüt", "C1"},
	{"implication", "ima", "C1"},
	{"incentive", "teşvik", "C1"},
	{"insight", "içgörü", "C1"},
	{"integrity", "dürüstlük", "C1"},
	{"legacy", "miras", "C1"},
	{"mandate", "yetki", "C1"},
	{"notion", "kavram", "C1"},
	{"scrutiny", "inceleme", "C1"},
	{"threshold", "eşik", "C1"},
	{"advocate", "savunmak", "C1"},
	{"allege", "iddia etmek", "C1"},
	{"attribute", "atfetmek", "C1"},
	{"constitute", "oluşturmak", "C1"},
	{"undermine", "baltalamak", "C1"},
	{"facilitate", "kolaylaştırmak", "C1"},
	{"mitigate", "hafifletmek", "C1"},

	// C2
	{"ubiquitous", "her yerde bulunan", "C2"},
	{"ephemeral", "geçici", "C2"},
	{"meticulous", "titiz", "C2"},
	{"tenacious", "azimli", "C2"},
	{"pragmatic", "pragmatik", "C2"},
	{"eloquent", "güzel konuşan", "C2"},
	{"astute", "açıkgöz", "C2"},
	{"candid", "samimi", "C2"},
	{"cynical", "alaycı", "C2"},
	{"diligent", "çalışkan", "C2"},
	{"frugal", "tutumlu", "C2"},
	{"gullible", "saf", "C2"},
	{"indifferent", "kayıtsız", "C2"},
	{"obsolete", "modası geçmiş", "C2"},
	{"pompous", "kendini beğenmiş", "C2"},
	{"prudent", "ihtiyatlı", "C2"},
	{"reluctant", "isteksiz", "C2"},
	{"resilient", "dayanıklı", "C2"},
	{"ruthless", "acımasız", "C2"},
	{"scarce", "kıt", "C2"},
	{"serendipity", "şans eseri keşif", "C2"},
	{"epiphany", "aydınlanma anı", "C2"},
	{"quintessential", "tipik örnek", "C2"},
	{"idiosyncrasy", "kişisel tuhaflık", "C2"},
	{"juxtaposition", "yan yana koyma", "C2"},
	{"nuance", "nüans", "C2"},
	{"connoisseur", "erbap", "C2"},
	{"debacle", "fiyasko", "C2"},
	{"conundrum", "çıkmaz", "C2"},
	{"anomaly", "anomali", "C2"},
	{"precedent", "emsal", "C2"},
	{"repercussion", "olumsuz sonuç", "C2"},
	{"vindicate", "aklamak", "C2"},
	{"exacerbate", "kötüleştirmek", "C2"},
	{"alleviate", "dindirmek", "C2"},
	{"scrutinize", "titizlikle incelemek", "C2"},
	{"extrapolate", "çıkarım yapmak", "C2"},
	{"corroborate", "doğrulamak", "C2"},
	{"ameliorate", "iyileştirmek", "C2"},
	{"obfuscate", "karmaşıklaştırmak", "C2"},
}
