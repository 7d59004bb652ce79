package sentiment

// lexicon maps lowercase word tokens to polarity weights in [-5, 5],
// following the AFINN word list. This is the subset that shows up in
// practice on short social posts; words not listed here score 0.
var lexicon = map[string]int{
	"abandon":      -2,
	"abuse":        -3,
	"accept":       1,
	"accomplish":   2,
	"ache":         -2,
	"admire":       3,
	"adore":        3,
	"adventure":    2,
	"afraid":       -2,
	"aggressive":   -2,
	"agree":        1,
	"alive":        1,
	"amazing":      4,
	"amuse":        3,
	"anger":        -3,
	"angry":        -3,
	"annoy":        -2,
	"annoyed":      -2,
	"annoying":     -2,
	"anxious":      -2,
	"apology":      -1,
	"appreciate":   2,
	"approve":      2,
	"arrogant":     -2,
	"ashamed":      -2,
	"attack":       -1,
	"avoid":        -1,
	"awesome":      4,
	"awful":        -3,
	"awkward":      -2,
	"bad":          -3,
	"ban":          -2,
	"beautiful":    3,
	"believe":      1,
	"best":         3,
	"betray":       -3,
	"better":       2,
	"bitter":       -2,
	"blame":        -2,
	"bless":        2,
	"block":        -1,
	"bored":        -2,
	"boring":       -3,
	"brave":        2,
	"breathtaking": 5,
	"brilliant":    4,
	"broke":        -2,
	"broken":       -1,
	"bug":          -2,
	"bully":        -2,
	"calm":         2,
	"cancel":       -1,
	"cancer":       -1,
	"care":         2,
	"celebrate":    3,
	"champion":     2,
	"chaos":        -2,
	"charm":        3,
	"charming":     3,
	"cheat":        -3,
	"cheer":        2,
	"cheerful":     2,
	"clean":        2,
	"clever":       2,
	"collapse":     -2,
	"comfort":      2,
	"complain":     -2,
	"confident":    2,
	"confused":     -2,
	"congrats":     2,
	"congratulations": 2,
	"cool":         1,
	"corrupt":      -3,
	"courage":      2,
	"coward":       -2,
	"crap":         -3,
	"crash":        -2,
	"crazy":        -2,
	"creative":     2,
	"crisis":       -3,
	"cruel":        -3,
	"cry":          -1,
	"cute":         2,
	"damage":       -3,
	"damn":         -4,
	"danger":       -2,
	"dead":         -3,
	"death":        -2,
	"defeat":       -2,
	"delight":      3,
	"delighted":    3,
	"denied":       -2,
	"depressed":    -2,
	"destroy":      -3,
	"die":          -3,
	"dirty":        -2,
	"disappointed": -2,
	"disappointing": -2,
	"disaster":     -2,
	"disgust":      -3,
	"disgusting":   -3,
	"dishonest":    -2,
	"dislike":      -2,
	"distrust":     -3,
	"doubt":        -1,
	"dream":        1,
	"dumb":         -3,
	"eager":        2,
	"easy":         1,
	"elegant":      2,
	"embarrassed":  -2,
	"empty":        -1,
	"encourage":    2,
	"enemy":        -2,
	"energetic":    2,
	"enjoy":        2,
	"enjoyed":      2,
	"enthusiastic": 3,
	"evil":         -3,
	"excellent":    3,
	"excited":      3,
	"exciting":     3,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"fake":         -3,
	"fantastic":    4,
	"fast":         1,
	"fatigue":      -2,
	"fault":        -2,
	"favorite":     2,
	"fear":         -2,
	"fight":        -1,
	"fine":         2,
	"fired":        -2,
	"flawless":     2,
	"fool":         -2,
	"forgive":      1,
	"fraud":        -4,
	"free":         1,
	"fresh":        1,
	"friendly":     2,
	"frustrated":   -2,
	"frustrating":  -2,
	"fun":          4,
	"funny":        4,
	"furious":      -3,
	"generous":     2,
	"gift":         2,
	"glad":         3,
	"gloomy":       -1,
	"god":          1,
	"good":         3,
	"gorgeous":     3,
	"grace":        1,
	"grateful":     3,
	"great":        3,
	"greed":        -3,
	"greedy":       -2,
	"grief":        -2,
	"growth":       2,
	"guilty":       -3,
	"happy":        3,
	"harm":         -2,
	"hate":         -3,
	"hated":        -3,
	"haunt":        -1,
	"heaven":       2,
	"hell":         -4,
	"help":         2,
	"helpful":      2,
	"hero":         2,
	"honest":       2,
	"hope":         2,
	"hopeful":      2,
	"hopeless":     -2,
	"horrible":     -3,
	"hug":          2,
	"humiliated":   -3,
	"hurt":         -2,
	"idiot":        -3,
	"ignore":       -1,
	"ill":          -2,
	"impressed":    3,
	"impressive":   3,
	"improve":      2,
	"incredible":   4,
	"innovative":   1,
	"insane":       -2,
	"inspire":      2,
	"inspired":     2,
	"inspiring":    2,
	"insult":       -2,
	"intelligent":  2,
	"interesting":  2,
	"jealous":      -2,
	"jerk":         -3,
	"joke":         2,
	"joy":          3,
	"kill":         -3,
	"kind":         2,
	"kudos":        3,
	"lame":         -2,
	"laugh":        1,
	"lazy":         -1,
	"liar":         -3,
	"lie":          -1,
	"like":         2,
	"limited":      -1,
	"lol":          3,
	"lonely":       -2,
	"lose":         -3,
	"loser":        -3,
	"loss":         -3,
	"lost":         -3,
	"love":         3,
	"loved":        3,
	"lovely":       3,
	"loyal":        3,
	"lucky":        3,
	"mad":          -3,
	"magnificent":  3,
	"mess":         -2,
	"miracle":      4,
	"miss":         -2,
	"missed":       -2,
	"mistake":      -2,
	"motivated":    2,
	"murder":       -2,
	"nasty":        -3,
	"nervous":      -2,
	"nice":         3,
	"noisy":        -1,
	"nonsense":     -2,
	"outstanding":  5,
	"overwhelmed":  -2,
	"pain":         -2,
	"painful":      -2,
	"panic":        -3,
	"passion":      1,
	"passionate":   2,
	"pathetic":     -2,
	"peace":        2,
	"perfect":      3,
	"pleasant":     3,
	"pleased":      3,
	"pleasure":     3,
	"poor":         -2,
	"positive":     2,
	"powerful":     2,
	"praise":       3,
	"pretty":       1,
	"proud":        2,
	"quit":         -1,
	"rage":         -2,
	"reject":       -1,
	"rejected":     -2,
	"relax":        2,
	"relaxed":      2,
	"relief":       1,
	"respect":      2,
	"rich":         2,
	"ridiculous":   -3,
	"rip":          -2,
	"robust":       2,
	"rude":         -2,
	"sad":          -2,
	"safe":         1,
	"satisfied":    2,
	"scam":         -2,
	"scandal":      -3,
	"scared":       -2,
	"scary":        -2,
	"screwed":      -2,
	"shame":        -2,
	"share":        1,
	"shine":        2,
	"shock":        -2,
	"shocked":      -2,
	"sick":         -2,
	"silly":        -1,
	"sincere":      2,
	"smart":        1,
	"smile":        2,
	"smug":         -2,
	"solid":        2,
	"solution":     1,
	"sorrow":       -2,
	"sorry":        -1,
	"spam":         -2,
	"splendid":     3,
	"steal":        -2,
	"stolen":       -2,
	"strange":      -1,
	"stress":       -1,
	"stressed":     -2,
	"strong":       2,
	"struggle":     -2,
	"stuck":        -2,
	"stupid":       -2,
	"succeed":      3,
	"success":      2,
	"successful":   3,
	"suck":         -3,
	"sucks":        -3,
	"suffer":       -2,
	"super":        3,
	"superb":       5,
	"support":      2,
	"surprise":     2,
	"sweet":        2,
	"terrible":     -3,
	"terrific":     4,
	"terrified":    -3,
	"thank":        2,
	"thankful":     2,
	"thanks":       2,
	"threat":       -2,
	"thrilled":     5,
	"tired":        -2,
	"top":          2,
	"tough":        -2,
	"toxic":        -3,
	"tragedy":      -2,
	"tragic":       -2,
	"trust":        1,
	"ugly":         -3,
	"unbelievable": -1,
	"unfair":       -2,
	"unhappy":      -2,
	"upset":        -2,
	"useful":       2,
	"useless":      -2,
	"vibrant":      3,
	"vicious":      -2,
	"victory":      3,
	"violent":      -3,
	"warm":         1,
	"waste":        -1,
	"weak":         -2,
	"wealth":       3,
	"weird":        -2,
	"welcome":      2,
	"win":          4,
	"winner":       4,
	"wonderful":    4,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"worthless":    -2,
	"worthy":       2,
	"wow":          4,
	"wrong":        -2,
	"yay":          3,
	"yes":          1,
	"yummy":        3,
}
