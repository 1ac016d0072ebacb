package crypto

// PassphraseDelimiter separates the words of a generated passphrase.
const PassphraseDelimiter = "-"

// wordlist holds short, easy to pronounce English words for passphrases.
// Entries are distinct, lowercase and 3 to 8 letters long. It is never
// modified after initialization.
var wordlist = []string{
	"able", "acid", "aged", "also", "area", "army", "away", "baby",
	"back", "ball", "band", "bank", "base", "bath", "bear", "beat",
	"been", "beer", "bell", "belt", "bent", "best", "bird", "bite",
	"blow", "blue", "boat", "body", "boil", "bold", "bolt", "bomb",
	"bond", "bone", "book", "boom", "boot", "born", "boss", "both",
	"bowl", "bulk", "bull", "burn", "burst", "bush", "busy", "cafe",
	"cage", "cake", "call", "calm", "came", "camp", "card", "care",
	"case", "cash", "cast", "cave", "cell", "chat", "chef", "chip",
	"city", "clay", "clean", "clear", "clip", "clock", "close", "cloud",
	"club", "clue", "coal", "coat", "code", "coin", "cold", "come",
	"cook", "cool", "cope", "copy", "core", "corn", "cost", "cosy",
	"crab", "crew", "crop", "crow", "cube", "cute", "dame", "damp",
	"dare", "dark", "dash", "data", "date", "dawn", "days", "dead",
	"deaf", "deal", "dean", "dear", "debt", "deck", "deed", "deep",
	"deer", "deny", "desk", "dial", "diet", "dime", "dine", "dirt",
	"disc", "dish", "dive", "dock", "does", "doll", "dome", "done",
	"door", "dose", "down", "drag", "draw", "drew", "drop", "drug",
	"drum", "dual", "duck", "dull", "dumb", "dump", "dune", "dunk",
	"dusk", "dust", "duty", "each", "earl", "earn", "ease", "east",
	"easy", "echo", "edge", "edit", "else", "emit", "epic", "even",
	"ever", "evil", "exam", "exit", "face", "fact", "fade", "fail",
	"fair", "fake", "fall", "fame", "fare", "farm", "fast", "fate",
	"fear", "feat", "feed", "feel", "feet", "fell", "felt", "file",
	"fill", "film", "find", "fine", "fire", "firm", "fish", "fist",
	"five", "flag", "flat", "fled", "flee", "flew", "flip", "flow",
	"folk", "fond", "font", "food", "fool", "foot", "ford", "fork",
	"form", "fort", "foul", "four", "fowl", "free", "from", "fuel",
	"full", "fund", "funk", "fury", "fuse", "gain", "gale", "game",
	"gang", "gate", "gave", "gear", "gene", "gift", "girl", "give",
	"glad", "glow", "glue", "goal", "goat", "goes", "gold", "golf",
	"gone", "good", "grab", "grad", "gray", "grew", "grey", "grid",
	"grim", "grin", "grip", "grow", "gulf", "guru", "half", "hall",
}

// Words returns a copy of the passphrase word list.
func Words() []string {
	out := make([]string, len(wordlist))
	copy(out, wordlist)
	return out
}

// WordlistSize returns the number of words available for passphrases.
func WordlistSize() int {
	return len(wordlist)
}
