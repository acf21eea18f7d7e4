// Package quran provides the canonical ordering of the 114 surahs so that
// episode listings sort by recitation sequence rather than feed order.
// Lookups go through the arabic normalizer, so the spelling variants the feed
// uses (hamza forms, taa marbuta, diacritics) collapse onto one key.
package quran

import (
	"strings"

	"recitation-search/pkg/arabic"
)

// Unranked is returned for chapter names absent from the table. It is larger
// than any real rank, so unknown chapters sort after all known ones.
const Unranked = 1<<31 - 1

type entry struct {
	rank  int
	names []string
}

// surahs lists each chapter's canonical Arabic name followed by its common
// English transliterations.
var surahs = []entry{
	{1, []string{"الفاتحة", "Al-Fatihah", "Al-Fatiha"}},
	{2, []string{"البقرة", "Al-Baqarah", "Al-Baqara"}},
	{3, []string{"آل عمران", "Aal-Imran", "Al-Imran", "Ali 'Imran"}},
	{4, []string{"النساء", "An-Nisa", "An-Nisaa"}},
	{5, []string{"المائدة", "Al-Ma'idah", "Al-Maidah"}},
	{6, []string{"الأنعام", "Al-An'am", "Al-Anaam"}},
	{7, []string{"الأعراف", "Al-A'raf", "Al-Araf"}},
	{8, []string{"الأنفال", "Al-Anfal"}},
	{9, []string{"التوبة", "At-Tawbah", "At-Taubah"}},
	{10, []string{"يونس", "Yunus"}},
	{11, []string{"هود", "Hud"}},
	{12, []string{"يوسف", "Yusuf"}},
	{13, []string{"الرعد", "Ar-Ra'd", "Ar-Rad"}},
	{14, []string{"إبراهيم", "Ibrahim"}},
	{15, []string{"الحجر", "Al-Hijr"}},
	{16, []string{"النحل", "An-Nahl"}},
	{17, []string{"الإسراء", "Al-Isra"}},
	{18, []string{"الكهف", "Al-Kahf"}},
	{19, []string{"مريم", "Maryam"}},
	{20, []string{"طه", "Taha", "Ta-Ha"}},
	{21, []string{"الأنبياء", "Al-Anbiya"}},
	{22, []string{"الحج", "Al-Hajj"}},
	{23, []string{"المؤمنون", "Al-Mu'minun", "Al-Muminun"}},
	{24, []string{"النور", "An-Nur", "An-Noor"}},
	{25, []string{"الفرقان", "Al-Furqan"}},
	{26, []string{"الشعراء", "Ash-Shu'ara", "Ash-Shuara"}},
	{27, []string{"النمل", "An-Naml"}},
	{28, []string{"القصص", "Al-Qasas"}},
	{29, []string{"العنكبوت", "Al-Ankabut"}},
	{30, []string{"الروم", "Ar-Rum", "Ar-Room"}},
	{31, []string{"لقمان", "Luqman"}},
	{32, []string{"السجدة", "As-Sajdah", "As-Sajda"}},
	{33, []string{"الأحزاب", "Al-Ahzab"}},
	{34, []string{"سبأ", "Saba"}},
	{35, []string{"فاطر", "Fatir"}},
	{36, []string{"يس", "Ya-Sin", "Yasin", "Yaseen"}},
	{37, []string{"الصافات", "As-Saffat"}},
	{38, []string{"ص", "Sad"}},
	{39, []string{"الزمر", "Az-Zumar"}},
	{40, []string{"غافر", "Ghafir"}},
	{41, []string{"فصلت", "Fussilat"}},
	{42, []string{"الشورى", "Ash-Shura", "Ash-Shuraa"}},
	{43, []string{"الزخرف", "Az-Zukhruf"}},
	{44, []string{"الدخان", "Ad-Dukhan"}},
	{45, []string{"الجاثية", "Al-Jathiyah", "Al-Jathiya"}},
	{46, []string{"الأحقاف", "Al-Ahqaf"}},
	{47, []string{"محمد", "Muhammad"}},
	{48, []string{"الفتح", "Al-Fath", "Al-Fath'h"}},
	{49, []string{"الحجرات", "Al-Hujurat"}},
	{50, []string{"ق", "Qaf"}},
	{51, []string{"الذاريات", "Adh-Dhariyat", "Az-Zariyat"}},
	{52, []string{"الطور", "At-Tur", "At-Toor"}},
	{53, []string{"النجم", "An-Najm"}},
	{54, []string{"القمر", "Al-Qamar"}},
	{55, []string{"الرحمن", "Ar-Rahman"}},
	{56, []string{"الواقعة", "Al-Waqi'ah", "Al-Waqia"}},
	{57, []string{"الحديد", "Al-Hadid", "Al-Hadeed"}},
	{58, []string{"المجادلة", "Al-Mujadila", "Al-Mujadilah"}},
	{59, []string{"الحشر", "Al-Hashr"}},
	{60, []string{"الممتحنة", "Al-Mumtahanah", "Al-Mumtahina"}},
	{61, []string{"الصف", "As-Saff", "As-Saf"}},
	{62, []string{"الجمعة", "Al-Jumu'ah", "Al-Jumua"}},
	{63, []string{"المنافقون", "Al-Munafiqun", "Al-Munafiqoon"}},
	{64, []string{"التغابن", "At-Taghabun"}},
	{65, []string{"الطلاق", "At-Talaq"}},
	{66, []string{"التحريم", "At-Tahrim", "At-Tahreem"}},
	{67, []string{"الملك", "Al-Mulk"}},
	{68, []string{"القلم", "Al-Qalam"}},
	{69, []string{"الحاقة", "Al-Haqqah", "Al-Haqqa"}},
	{70, []string{"المعارج", "Al-Ma'arij", "Al-Maarij"}},
	{71, []string{"نوح", "Nuh", "Nooh"}},
	{72, []string{"الجن", "Al-Jinn"}},
	{73, []string{"المزمل", "Al-Muzzammil"}},
	{74, []string{"المدثر", "Al-Muddaththir", "Al-Muddathir"}},
	{75, []string{"القيامة", "Al-Qiyamah", "Al-Qiyama"}},
	{76, []string{"الإنسان", "Al-Insan", "Ad-Dahr"}},
	{77, []string{"المرسلات", "Al-Mursalat"}},
	{78, []string{"النبأ", "An-Naba"}},
	{79, []string{"النازعات", "An-Nazi'at", "An-Naziat"}},
	{80, []string{"عبس", "Abasa"}},
	{81, []string{"التكوير", "At-Takwir", "At-Takweer"}},
	{82, []string{"الانفطار", "Al-Infitar"}},
	{83, []string{"المطففين", "Al-Mutaffifin", "Al-Mutaffifeen"}},
	{84, []string{"الانشقاق", "Al-Inshiqaq"}},
	{85, []string{"البروج", "Al-Buruj", "Al-Burooj"}},
	{86, []string{"الطارق", "At-Tariq"}},
	{87, []string{"الأعلى", "Al-A'la", "Al-Ala"}},
	{88, []string{"الغاشية", "Al-Ghashiyah", "Al-Ghashiya"}},
	{89, []string{"الفجر", "Al-Fajr"}},
	{90, []string{"البلد", "Al-Balad"}},
	{91, []string{"الشمس", "Ash-Shams"}},
	{92, []string{"الليل", "Al-Layl", "Al-Lail"}},
	{93, []string{"الضحى", "Ad-Duha", "Ad-Dhuha"}},
	{94, []string{"الشرح", "Ash-Sharh", "Al-Inshirah"}},
	{95, []string{"التين", "At-Tin", "At-Teen"}},
	{96, []string{"العلق", "Al-Alaq"}},
	{97, []string{"القدر", "Al-Qadr"}},
	{98, []string{"البينة", "Al-Bayyinah", "Al-Bayyina"}},
	{99, []string{"الزلزلة", "Az-Zalzalah", "Az-Zalzala"}},
	{100, []string{"العاديات", "Al-Adiyat"}},
	{101, []string{"القارعة", "Al-Qari'ah", "Al-Qaria"}},
	{102, []string{"التكاثر", "At-Takathur", "At-Takaathur"}},
	{103, []string{"العصر", "Al-Asr"}},
	{104, []string{"الهمزة", "Al-Humazah", "Al-Humaza"}},
	{105, []string{"الفيل", "Al-Fil", "Al-Feel"}},
	{106, []string{"قريش", "Quraysh", "Quraish"}},
	{107, []string{"الماعون", "Al-Ma'un", "Al-Maun"}},
	{108, []string{"الكوثر", "Al-Kawthar", "Al-Kauthar"}},
	{109, []string{"الكافرون", "Al-Kafirun", "Al-Kafiroon"}},
	{110, []string{"النصر", "An-Nasr"}},
	{111, []string{"المسد", "Al-Masad", "Al-Lahab"}},
	{112, []string{"الإخلاص", "Al-Ikhlas", "Al-Ikhlaas"}},
	{113, []string{"الفلق", "Al-Falaq"}},
	{114, []string{"الناس", "An-Nas", "An-Naas"}},
}

var index = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(surahs)*3)
	register := func(key string, rank int) {
		if key == "" {
			return
		}
		// First registration wins so earlier chapters keep their rank on
		// the rare variant collision.
		if _, ok := idx[key]; !ok {
			idx[key] = rank
		}
	}
	for _, e := range surahs {
		for _, name := range e.names {
			key := canonicalKey(name)
			register(key, e.rank)
			register(stripArticles(key), e.rank)
		}
	}
	return idx
}

// RankOf returns the canonical sequence number for a chapter label as it
// appears in an episode title (marker words like "سورة"/"Surah" included or
// not). Unknown labels return Unranked.
func RankOf(name string) int {
	key := canonicalKey(name)
	if key == "" {
		return Unranked
	}
	if r, ok := index[key]; ok {
		return r
	}
	stripped := stripArticles(key)
	if r, ok := index[stripped]; ok {
		return r
	}
	// A label like "تلاوة من سورة البقرة" still carries the chapter name as
	// one of its tokens.
	for _, tok := range strings.Fields(stripped) {
		if r, ok := index[tok]; ok {
			return r
		}
	}
	return Unranked
}

// markerWords are dropped from labels before lookup. Normalized forms: taa
// marbuta in "سورة" has already become haa.
var markerWords = map[string]bool{
	"سوره":  true,
	"surah": true,
	"sura":  true,
}

// canonicalKey normalizes a chapter label into its lookup form: arabic
// normalization, marker words and punctuation dropped, spaces collapsed.
func canonicalKey(name string) string {
	n := arabic.Normalize(name)
	n = strings.NewReplacer("-", "", "'", "", "’", "", "ʿ", "").Replace(n)
	var kept []string
	for _, tok := range strings.Fields(n) {
		if markerWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// stripArticles removes the definite article ("ال" or "al") from the front of
// each token, so "البقره" and "بقره" resolve to the same rank.
func stripArticles(key string) string {
	toks := strings.Fields(key)
	var kept []string
	for _, tok := range toks {
		switch {
		case strings.HasPrefix(tok, "ال") && len([]rune(tok)) > 3:
			kept = append(kept, strings.TrimPrefix(tok, "ال"))
		case strings.HasPrefix(tok, "al") && len(tok) > 3:
			kept = append(kept, strings.TrimPrefix(tok, "al"))
		default:
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}
