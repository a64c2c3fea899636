package maiden

// doublerTokens is the palette each new doubles streak draws its emoji from
var doublerTokens = []string{
	"🍒", "✌️", "🫁", "👯", "🤼", "🫂", "🎎", "🙌", "🖇️", "⚔️", "🛠️",
	"⛓️", "🛍️", "🚻", "👣", "🧦", "🩰", "⚖️", "🧬", "🎵", "♊", "🪺",
}

var doubleNiceFlavors = []string{
	"ʕ◉ᴥ◉ʔ",
	"(so nice they rolled it twice!)",
}

var sixtyNineFlavors = []string{
	"( ͝° ͜ʖ͡°)",
	"(nice)",
	"★~(◠‿◕✿)",
	"(⁄ ⁄•⁄ω⁄•⁄ ⁄)",
	"( ͡° ͜ʖ├┬┴┬┴",
	"(✌ﾟ∀ﾟ)☞",
}

var rolledOneFlavors = []string{
	"(oof)",
	"(you make me sad)",
	"(my gram rolls better than you)",
	"(you're number one!)",
	"(git gud)",
}

// pairFlavor picks the flavor text for a two-die roll. Earlier cases win.
func (s *service) pairFlavor(a, b, sum int) string {
	switch {
	case a == 69 && b == 69:
		return s.diceRoller.ChooseOne(doubleNiceFlavors)
	case sum == 2:
		return "(BIG OOOF)"
	case a == b:
		return "DOUBLES! :beers:"
	case a == 69 || b == 69 || sum == 69:
		return s.diceRoller.ChooseOne(sixtyNineFlavors)
	case sum == 111:
		return "🌠"
	case (a == 1 && b == 100) || (a == 100 && b == 1):
		return "HOW IS THIS EVEN POSSIBLE, WHY DO YOU HAVE THIS KARMA?!"
	case a == 100 || b == 100:
		return "(another :100: wasted)"
	case a == 1 || b == 1:
		return s.diceRoller.ChooseOne(rolledOneFlavors)
	default:
		return ""
	}
}
