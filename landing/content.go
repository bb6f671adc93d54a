package landing

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/reveal"
	"github.com/phanxgames/reveal/ebitenhost"
)

// Palette.
var (
	navy      = ebitenhost.MustHex("#142d4a")
	ink       = ebitenhost.MustHex("#0d1f2d")
	paper     = ebitenhost.MustHex("#ffffff")
	mist      = ebitenhost.MustHex("#f5f6f8")
	brand     = ebitenhost.MustHex("#0066cc")
	slate     = ebitenhost.MustHex("#3f4651")
	glass     = ebitenhost.MustHex("#ffffff14")
	glassCard = ebitenhost.MustHex("#ffffff10")
	white90   = ebitenhost.MustHex("#ffffffe6")
)

// Section containers stagger their children the same way everywhere.
const (
	sectionDelay   = 0.2
	sectionStagger = 0.15
	sectionAmount  = 0.3
	ctaAmount      = 0.5
)

func hover(target reveal.Props, mask reveal.PropMask) *reveal.Transient {
	return &reveal.Transient{Target: target, Mask: mask, Duration: 0.3, Ease: "easeOut"}
}

func press(scale float64) *reveal.Transient {
	return &reveal.Transient{Target: reveal.Props{Scale: scale}, Mask: reveal.MaskScale, Duration: 0.1, Ease: "easeOut"}
}

var (
	liftHover       = hover(reveal.Props{Y: -10}, reveal.MaskY)
	growHover       = hover(reveal.Props{Scale: 1.08}, reveal.MaskScale)
	nudgeHover      = hover(reveal.Props{Scale: 1.05}, reveal.MaskScale)
	growLiftHover   = hover(reveal.Props{Scale: 1.08, Y: -8}, reveal.MaskScale|reveal.MaskY)
	heroButtonHover = &reveal.Transient{Target: reveal.Props{Scale: 1.05}, Mask: reveal.MaskScale, Duration: 0.2, Ease: "easeOut"}
)

// still is the motion of nodes that exist only to carry pointer variants.
var still = reveal.MotionSpec{
	Name:     "still",
	Hidden:   reveal.Identity,
	Visible:  reveal.Identity,
	Duration: 0.01,
}

// popIn grows a stat figure from half size with a springy overshoot.
var popIn = reveal.MotionSpec{
	Name:     "popIn",
	Hidden:   reveal.Props{Opacity: 0, Scale: 0.5},
	Visible:  reveal.Identity,
	Duration: 0.6,
	Delay:    0.2,
	Ease:     "spring",
}

// footerRise is the footer's one-shot entrance.
var footerRise = reveal.MotionSpec{
	Name:     "footerRise",
	Hidden:   reveal.Props{Opacity: 0, Y: 20, Scale: 1},
	Visible:  reveal.Identity,
	Duration: 0.6,
}

// caption is a line of card text with its own in-view fade.
type caption struct {
	text   string
	motion reveal.MotionSpec
	size   float64
	color  ebitenhost.Color
}

type card struct {
	badge    string
	captions []caption
}

// section is a titled grid of cards revealed as one staggered container.
type section struct {
	id      string
	title   string
	bg      ebitenhost.Color
	cardBg  ebitenhost.Color
	cols    int
	cardH   float64
	motion  reveal.MotionSpec
	hover   *reveal.Transient
	press   *reveal.Transient
	cards   []card
	heading ebitenhost.Color
}

func fade(text string, delay float64) caption {
	return caption{text: text, motion: reveal.FadeIn.WithDelay(delay), size: 16, color: slate}
}

func numbered(texts []string, pad bool, delay float64) []card {
	cards := make([]card, len(texts))
	for i, t := range texts {
		badge := strconv.Itoa(i + 1)
		if pad {
			badge = fmt.Sprintf("%02d", i+1)
		}
		cards[i] = card{badge: badge, captions: []caption{fade(t, delay)}}
	}
	return cards
}

var sections = []section{
	{
		id: "vision", title: "Our Vision & Mission", bg: paper, cardBg: mist, heading: navy,
		cols: 2, cardH: 180, motion: reveal.ScaleIn, hover: liftHover, press: press(0.98),
		cards: numbered([]string{
			"Create lasting global academic partnerships",
			"Transform students into confident global professionals",
		}, false, 0.3),
	},
	{
		id: "why", title: "Why Study Abroad?", bg: mist, cardBg: paper, heading: navy,
		cols: 3, cardH: 140, motion: reveal.RotateIn, hover: growHover, press: press(0.96),
		cards: numbered([]string{
			"International Exposure",
			"Enhanced Career Prospects",
			"World-Class Education",
			"Multicultural Experience",
			"Personal Development",
			"Research Excellence",
		}, true, 0.2),
	},
	{
		id: "services", title: "Our Services", bg: paper, cardBg: navy, heading: navy,
		cols: 3, cardH: 140, motion: reveal.SlideInUp, hover: growLiftHover, press: press(0.95),
		cards: recolor(numbered([]string{
			"Test Preparation",
			"University Selection",
			"Application Support",
			"Document Writing",
			"Visa Assistance",
			"Student Support",
		}, false, 0.25), paper),
	},
	{
		id: "objectives", title: "Our Objectives", bg: mist, cardBg: paper, heading: navy,
		cols: 3, cardH: 140, motion: reveal.FadeUp, hover: liftHover, press: press(0.96),
		cards: numbered([]string{
			"Global University Network",
			"Dual Degree Programs",
			"Research Initiatives",
			"Internship Opportunities",
			"Exchange Programs",
		}, true, 0.2),
	},
	{
		id: "process", title: "Our Process", bg: paper, cardBg: mist, heading: navy,
		cols: 3, cardH: 170, motion: reveal.ScaleIn, hover: nudgeHover, press: press(0.96),
		cards: processCards([]string{
			"Career Counseling",
			"University Shortlisting",
			"Application Submission",
			"Visa Preparation",
			"Pre-Departure Training",
			"Graduate Support",
		}),
	},
	{
		id: "stats", bg: navy, cardBg: glassCard,
		cols: 4, cardH: 170, motion: reveal.SlideInUp, hover: growHover, press: press(0.95),
		cards: statCards([][2]string{
			{"1000+", "Students Placed"},
			{"50+", "Partner Universities"},
			{"15+", "Countries Covered"},
			{"98%", "Success Rate"},
		}),
	},
}

func recolor(cards []card, c ebitenhost.Color) []card {
	for i := range cards {
		for j := range cards[i].captions {
			cards[i].captions[j].color = c
		}
	}
	return cards
}

func processCards(steps []string) []card {
	cards := make([]card, len(steps))
	for i, s := range steps {
		step := fade("Step "+strconv.Itoa(i+1), 0.15)
		step.color = navy
		step.size = 18
		cards[i] = card{badge: strconv.Itoa(i + 1), captions: []caption{step, fade(s, 0.25)}}
	}
	return cards
}

func statCards(stats [][2]string) []card {
	cards := make([]card, len(stats))
	for i, s := range stats {
		value := caption{text: s[0], motion: popIn, size: 40, color: paper}
		label := fade(s[1], 0.3)
		label.color = white90
		cards[i] = card{captions: []caption{value, label}}
	}
	return cards
}
