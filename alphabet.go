// Package base1024 implements a binary-to-text transcoding over a fixed
// alphabet of 1024 glyphs plus 4 terminator glyphs. Every 5 input bytes map
// to 4 symbols of 10 bits each; a trailing group of 1-4 bytes maps to the
// same amount of symbols followed by a terminator carrying the leftover byte
// count. See Encode and Decode for the wire format details.
package base1024

import (
	"fmt"
)

const (
	alphabetSize = 1024
	paddingCount = 4

	quantumBytes   = 5
	quantumSymbols = 4
	codeBits       = 10
	codeMask       = 1<<codeBits - 1
)

const (
	// U+1F300..U+1F5FF (768 glyphs)
	alphabetPictographs = "🌀🌁🌂🌃🌄🌅🌆🌇🌈🌉🌊🌋🌌🌍🌎🌏🌐🌑🌒🌓🌔🌕🌖🌗🌘🌙🌚🌛🌜🌝🌞🌟🌠🌡🌢🌣🌤🌥🌦🌧🌨🌩🌪🌫🌬🌭🌮🌯🌰🌱🌲🌳🌴🌵🌶🌷🌸🌹🌺🌻🌼🌽🌾🌿" +
		"🍀🍁🍂🍃🍄🍅🍆🍇🍈🍉🍊🍋🍌🍍🍎🍏🍐🍑🍒🍓🍔🍕🍖🍗🍘🍙🍚🍛🍜🍝🍞🍟🍠🍡🍢🍣🍤🍥🍦🍧🍨🍩🍪🍫🍬🍭🍮🍯🍰🍱🍲🍳🍴🍵🍶🍷🍸🍹🍺🍻🍼🍽🍾🍿" +
		"🎀🎁🎂🎃🎄🎅🎆🎇🎈🎉🎊🎋🎌🎍🎎🎏🎐🎑🎒🎓🎔🎕🎖🎗🎘🎙🎚🎛🎜🎝🎞🎟🎠🎡🎢🎣🎤🎥🎦🎧🎨🎩🎪🎫🎬🎭🎮🎯🎰🎱🎲🎳🎴🎵🎶🎷🎸🎹🎺🎻🎼🎽🎾🎿" +
		"🏀🏁🏂🏃🏄🏅🏆🏇🏈🏉🏊🏋🏌🏍🏎🏏🏐🏑🏒🏓🏔🏕🏖🏗🏘🏙🏚🏛🏜🏝🏞🏟🏠🏡🏢🏣🏤🏥🏦🏧🏨🏩🏪🏫🏬🏭🏮🏯🏰🏱🏲🏳🏴🏵🏶🏷🏸🏹🏺🏻🏼🏽🏾🏿" +
		"🐀🐁🐂🐃🐄🐅🐆🐇🐈🐉🐊🐋🐌🐍🐎🐏🐐🐑🐒🐓🐔🐕🐖🐗🐘🐙🐚🐛🐜🐝🐞🐟🐠🐡🐢🐣🐤🐥🐦🐧🐨🐩🐪🐫🐬🐭🐮🐯🐰🐱🐲🐳🐴🐵🐶🐷🐸🐹🐺🐻🐼🐽🐾🐿" +
		"👀👁👂👃👄👅👆👇👈👉👊👋👌👍👎👏👐👑👒👓👔👕👖👗👘👙👚👛👜👝👞👟👠👡👢👣👤👥👦👧👨👩👪👫👬👭👮👯👰👱👲👳👴👵👶👷👸👹👺👻👼👽👾👿" +
		"💀💁💂💃💄💅💆💇💈💉💊💋💌💍💎💏💐💑💒💓💔💕💖💗💘💙💚💛💜💝💞💟💠💡💢💣💤💥💦💧💨💩💪💫💬💭💮💯💰💱💲💳💴💵💶💷💸💹💺💻💼💽💾💿" +
		"📀📁📂📃📄📅📆📇📈📉📊📋📌📍📎📏📐📑📒📓📔📕📖📗📘📙📚📛📜📝📞📟📠📡📢📣📤📥📦📧📨📩📪📫📬📭📮📯📰📱📲📳📴📵📶📷📸📹📺📻📼📽📾📿" +
		"🔀🔁🔂🔃🔄🔅🔆🔇🔈🔉🔊🔋🔌🔍🔎🔏🔐🔑🔒🔓🔔🔕🔖🔗🔘🔙🔚🔛🔜🔝🔞🔟🔠🔡🔢🔣🔤🔥🔦🔧🔨🔩🔪🔫🔬🔭🔮🔯🔰🔱🔲🔳🔴🔵🔶🔷🔸🔹🔺🔻🔼🔽🔾🔿" +
		"🕀🕁🕂🕃🕄🕅🕆🕇🕈🕉🕊🕋🕌🕍🕎🕏🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛🕜🕝🕞🕟🕠🕡🕢🕣🕤🕥🕦🕧🕨🕩🕪🕫🕬🕭🕮🕯🕰🕱🕲🕳🕴🕵🕶🕷🕸🕹🕺🕻🕼🕽🕾🕿" +
		"🖀🖁🖂🖃🖄🖅🖆🖇🖈🖉🖊🖋🖌🖍🖎🖏🖐🖑🖒🖓🖔🖕🖖🖗🖘🖙🖚🖛🖜🖝🖞🖟🖠🖡🖢🖣🖤🖥🖦🖧🖨🖩🖪🖫🖬🖭🖮🖯🖰🖱🖲🖳🖴🖵🖶🖷🖸🖹🖺🖻🖼🖽🖾🖿" +
		"🗀🗁🗂🗃🗄🗅🗆🗇🗈🗉🗊🗋🗌🗍🗎🗏🗐🗑🗒🗓🗔🗕🗖🗗🗘🗙🗚🗛🗜🗝🗞🗟🗠🗡🗢🗣🗤🗥🗦🗧🗨🗩🗪🗫🗬🗭🗮🗯🗰🗱🗲🗳🗴🗵🗶🗷🗸🗹🗺🗻🗼🗽🗾🗿"

	// U+1F600..U+1F64F (80 glyphs)
	alphabetEmoticons = "😀😁😂😃😄😅😆😇😈😉😊😋😌😍😎😏😐😑😒😓😔😕😖😗😘😙😚😛😜😝😞😟😠😡😢😣😤😥😦😧😨😩😪😫😬😭😮😯😰😱😲😳😴😵😶😷😸😹😺😻😼😽😾😿" +
		"🙀🙁🙂🙃🙄🙅🙆🙇🙈🙉🙊🙋🙌🙍🙎🙏"

	// U+1F680..U+1F6FF (128 glyphs)
	alphabetTransport = "🚀🚁🚂🚃🚄🚅🚆🚇🚈🚉🚊🚋🚌🚍🚎🚏🚐🚑🚒🚓🚔🚕🚖🚗🚘🚙🚚🚛🚜🚝🚞🚟🚠🚡🚢🚣🚤🚥🚦🚧🚨🚩🚪🚫🚬🚭🚮🚯🚰🚱🚲🚳🚴🚵🚶🚷🚸🚹🚺🚻🚼🚽🚾🚿" +
		"🛀🛁🛂🛃🛄🛅🛆🛇🛈🛉🛊🛋🛌🛍🛎🛏🛐🛑🛒🛓🛔🛕🛖🛗🛘🛙🛚🛛🛜🛝🛞🛟🛠🛡🛢🛣🛤🛥🛦🛧🛨🛩🛪🛫🛬🛭🛮🛯🛰🛱🛲🛳🛴🛵🛶🛷🛸🛹🛺🛻🛼🛽🛾🛿"

	// U+1F900..U+1F92F (48 glyphs)
	alphabetSupplemental = "🤀🤁🤂🤃🤄🤅🤆🤇🤈🤉🤊🤋🤌🤍🤎🤏🤐🤑🤒🤓🤔🤕🤖🤗🤘🤙🤚🤛🤜🤝🤞🤟🤠🤡🤢🤣🤤🤥🤦🤧🤨🤩🤪🤫🤬🤭🤮🤯"

	// terminators, tags 1..4
	alphabetPadding = "☕⚓⚜⚡"
)

const defaultAlphabet = alphabetPictographs +
	alphabetEmoticons +
	alphabetTransport +
	alphabetSupplemental +
	alphabetPadding

// Alphabet is a bidirectional mapping between 10 bit codes and glyphs, plus
// 4 distinguished terminator glyphs tagged with a leftover byte count in
// 1..4. It is immutable after construction and safe for concurrent use.
type Alphabet struct {
	runes   [alphabetSize]rune
	padding [paddingCount]rune
	reverse map[rune]uint16
}

// NewAlphabet builds an Alphabet from a string of exactly 1028 glyphs: 1024
// data glyphs in code order followed by 4 terminator glyphs in tag order.
// It panics when the glyph count is wrong or any glyph repeats. Both are
// programming errors in the alphabet literal, not runtime conditions.
func NewAlphabet(glyphs string) *Alphabet {
	a := &Alphabet{
		reverse: make(map[rune]uint16, alphabetSize+paddingCount),
	}

	i := 0
	for _, r := range glyphs {
		if i >= alphabetSize+paddingCount {
			panic("base1024: alphabet is longer than 1028 glyphs")
		}
		if _, ok := a.reverse[r]; ok {
			panic(fmt.Sprintf("base1024: alphabet has repeating glyph %q", r))
		}
		if i < alphabetSize {
			a.runes[i] = r
		} else {
			a.padding[i-alphabetSize] = r
		}
		a.reverse[r] = uint16(i)
		i++
	}
	if i < alphabetSize+paddingCount {
		panic("base1024: alphabet is shorter than 1028 glyphs")
	}

	return a
}

// Rune returns the glyph carrying code, which must be in 0..1023.
func (a *Alphabet) Rune(code int) rune {
	return a.runes[code]
}

// Padding returns the terminator glyph for tag leftover bytes, tag in 1..4.
func (a *Alphabet) Padding(tag int) rune {
	return a.padding[tag-1]
}

// Code is the reverse lookup for r. For a data glyph it returns its code and
// a zero tag, for a terminator glyph a zero code and its tag in 1..4. ok is
// false when r is not part of the alphabet.
func (a *Alphabet) Code(r rune) (code int, tag int, ok bool) {
	v, ok := a.reverse[r]
	if !ok {
		return 0, 0, false
	}
	if v >= alphabetSize {
		return 0, int(v-alphabetSize) + 1, true
	}
	return int(v), 0, true
}

// Default is the canonical alphabet: 1024 pictographic glyphs from four
// contiguous Unicode ranges, terminated by four Miscellaneous Symbols
// glyphs. Encoded data is tied to this table, changing it breaks decoding
// of previously produced streams.
var Default = NewAlphabet(defaultAlphabet)
