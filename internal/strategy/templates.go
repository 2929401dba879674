package strategy

import "fmt"

// TemplateVersion is the version of the template key set below. Locale
// catalogs declare the version they were written against.
const TemplateVersion = "v1.0.0"

const keyFactResult = "fact_result"

// memoryTricks holds the facts that have a rhyme, keyed by the normalized
// fact (smaller factor first).
var memoryTricks = map[[2]int]string{
	{6, 6}:   memoryTrickKey(6, 6),
	{6, 7}:   memoryTrickKey(6, 7),
	{6, 8}:   memoryTrickKey(6, 8),
	{7, 7}:   memoryTrickKey(7, 7),
	{7, 8}:   memoryTrickKey(7, 8),
	{8, 8}:   memoryTrickKey(8, 8),
	{12, 12}: memoryTrickKey(12, 12),
}

func memoryTrickKey(a, b int) string {
	return fmt.Sprintf("memory_trick_%dx%d", a, b)
}

// defaultTemplates is the built-in English phrasing for every key the
// engine renders.
var defaultTemplates = map[string]string{
	keyFactResult: "So {x} × {y} = {product}.",

	"strategy_name_ones":                 "Ones Rule",
	"strategy_name_tens":                 "Tens Rule",
	"strategy_name_twos":                 "Doubles Strategy",
	"strategy_name_fives":                "Fives Strategy",
	"strategy_name_pure_doubles":         "Halve and Double",
	"strategy_name_elevens_simple":       "Elevens Repeat",
	"strategy_name_squares":              "Square Numbers",
	"strategy_name_nines":                "Nines Strategy",
	"strategy_name_nines_digit_sum":      "Nines Digit Sum",
	"strategy_name_nines_finger_trick":   "Nines Finger Trick",
	"strategy_name_near_doubles":         "Near Squares",
	"strategy_name_memory_trick":         "Memory Trick",
	"strategy_name_benchmark_numbers":    "Benchmark Numbers",
	"strategy_name_building_known_facts": "Building on Known Facts",
	"strategy_name_elevens_advanced":     "Elevens Pattern",
	"strategy_name_visual_array":         "Picture It",
	"strategy_name_skip_counting":        "Skip Counting",
	"strategy_name_decomposition":        "Break It Apart",

	"ones_concept":    "Any number times 1 stays the same.",
	"ones_step1":      "One group of {n} is just {n}.",
	"ones_pattern":    "1 × n = n",
	"ones_mnemonic":   "One of anything is just itself!",
	"ones_real_world": "If you have 1 bag with {n} marbles, you have {n} marbles.",

	"tens_concept":    "Multiplying by 10 puts a zero on the end of the number.",
	"tens_step1":      "Start with {n}.",
	"tens_step2":      "Put a zero on the end: {n} becomes {product}.",
	"tens_pattern":    "n × 10 = n with a 0 on the end",
	"tens_mnemonic":   "Times ten? Add a zero, my friend!",
	"tens_real_world": "{n} dimes are worth {product} cents.",

	"twos_concept":    "Multiplying by 2 is the same as doubling.",
	"twos_step1":      "Doubling {n} means {n} + {n}.",
	"twos_step2":      "{n} + {n} = {product}.",
	"twos_pattern":    "2 × n = n + n",
	"twos_mnemonic":   "Two times is a double, no trouble!",
	"twos_real_world": "{n} pairs of socks make {product} socks.",

	"fives_concept":    "Five is half of ten, so multiply by 10 and cut it in half.",
	"fives_step1":      "First, {n} × 10 = {tens}.",
	"fives_step2":      "Half of {tens} is {product}.",
	"fives_pattern":    "5 × n = (10 × n) ÷ 2",
	"fives_mnemonic":   "Fives are half of tens!",
	"fives_real_world": "{n} hands have {product} fingers.",

	"pure_doubles_concept":    "Split {a} into two halves of {half}, solve the smaller fact, then double it.",
	"pure_doubles_step1":      "{a} is {half} + {half}.",
	"pure_doubles_step2":      "{half} × {b} = {part}.",
	"pure_doubles_step3":      "Double it: {part} + {part} = {product}.",
	"pure_doubles_pattern":    "even × n = double (half × n)",
	"pure_doubles_mnemonic":   "Halve it, solve it, double it!",
	"pure_doubles_real_world": "{half} boxes of {b} crayons hold {part} crayons, so {a} boxes hold {product}.",

	"elevens_simple_concept":    "Eleven times a single digit writes that digit twice.",
	"elevens_simple_step1":      "Take the digit {n}.",
	"elevens_simple_step2":      "Write it twice: {product}.",
	"elevens_simple_pattern":    "11 × n = nn for n from 1 to 9",
	"elevens_simple_mnemonic":   "Elevens see double!",
	"elevens_simple_real_world": "{n} soccer teams of 11 players make {product} players.",

	"squares_concept":    "{a} × {a} is a square number: {a} rows of {a} make a perfect square.",
	"squares_step1":      "Picture a square with {a} rows and {a} columns.",
	"squares_step2":      "{a} rows of {a} is {product}.",
	"squares_pattern":    "n × n = n²",
	"squares_mnemonic":   "Squares have equal sides!",
	"squares_real_world": "A floor {a} tiles wide and {a} tiles long has {product} tiles.",

	"nines_concept":    "Nine is one less than ten: multiply by 10, then take away one group.",
	"nines_step1":      "{n} × 10 = {tens}.",
	"nines_step2":      "Take away one {n}: {tens} − {n} = {product}.",
	"nines_pattern":    "9 × n = (10 × n) − n",
	"nines_mnemonic":   "Ten groups minus one group!",
	"nines_real_world": "{n} boxes of 10 pencils with 1 pencil missing from each box hold {product} pencils.",

	"nines_digit_sum_concept":  "In the nines table the tens digit is one less than {n}, and the two digits add up to 9.",
	"nines_digit_sum_step1":    "Tens digit: {n} − 1 = {tens_digit}.",
	"nines_digit_sum_step2":    "Ones digit: 9 − {tens_digit} = {ones_digit}.",
	"nines_digit_sum_step3":    "Put them together: {product}.",
	"nines_digit_sum_pattern":  "9 × n: the digits are (n − 1) and (10 − n), and they add up to 9",
	"nines_digit_sum_mnemonic": "Nines digits always add up to nine!",

	"nines_finger_trick_concept":  "Use your ten fingers to find 9 × {n}.",
	"nines_finger_trick_step1":    "Hold up all 10 fingers.",
	"nines_finger_trick_step2":    "Fold down finger number {n}, counting from the left.",
	"nines_finger_trick_step3":    "Fingers to the left of the folded one: {left}. Those are the tens.",
	"nines_finger_trick_step4":    "Fingers to the right of the folded one: {right}. Those are the ones.",
	"nines_finger_trick_step5":    "{left} tens and {right} ones make {product}.",
	"nines_finger_trick_mnemonic": "Fold a finger, read the answer!",

	"near_doubles_concept":  "{b} is one more than {a}, so start from the square {a} × {a} and add one more {a}.",
	"near_doubles_step1":    "{a} × {a} = {square}.",
	"near_doubles_step2":    "Add one more {a}: {square} + {a} = {product}.",
	"near_doubles_pattern":  "n × (n + 1) = n × n + n",
	"near_doubles_mnemonic": "Square it, then add one more group!",

	"memory_trick_concept": "Some facts are easiest to remember with a rhyme.",
	"memory_trick_step2":   "Say it out loud three times: {a} × {b} = {product}.",
	"memory_trick_6x6":     "{a} × {b} = {product}, pick up sticks!",
	"memory_trick_6x7":     "{a} × {b} = {product}, I'll tie my shoe!",
	"memory_trick_6x8":     "{a} and {b} went on a date, they came home as {product}!",
	"memory_trick_7x7":     "{a} × {b} = {product}, feeling fine!",
	"memory_trick_7x8":     "5, 6, 7, 8: {product} = {a} × {b}!",
	"memory_trick_8x8":     "I ate and ate and got sick on the floor: {a} × {b} = {product}!",
	"memory_trick_12x12":   "{a} × {b} = {product}, that's a gross!",

	"benchmark_numbers_concept_up":   "{a} is close to the benchmark {bench}, so start from {bench} × {b} and add what is left.",
	"benchmark_numbers_concept_down": "{a} is close to the benchmark {bench}, so start from {bench} × {b} and take away the extra.",
	"benchmark_numbers_step1":        "Benchmark fact: {bench} × {b} = {base}.",
	"benchmark_numbers_step2_up":     "{a} is {diff} more than {bench}, so add {diff} × {b} = {extra}.",
	"benchmark_numbers_step3_up":     "{base} + {extra} = {product}.",
	"benchmark_numbers_step2_down":   "{a} is {diff} less than {bench}, so take away {diff} × {b} = {extra}.",
	"benchmark_numbers_step3_down":   "{base} − {extra} = {product}.",
	"benchmark_numbers_pattern":      "Start from an easy benchmark (5 or 10), then adjust",
	"benchmark_numbers_real_world":   "It is like paying with coins: start with an easy amount, then add or take away the difference.",

	"building_known_facts_concept":     "Build {a} × {b} out of facts you already know.",
	"building_known_facts_step1_plus":  "Split {a} into {first} + {second}.",
	"building_known_facts_step1_minus": "Think of {a} as {first} − {second}.",
	"building_known_facts_step2":       "{first} × {b} = {first_product} (use the {first_name}).",
	"building_known_facts_step3":       "{second} × {b} = {second_product} (use the {second_name}).",
	"building_known_facts_step4_plus":  "Add them: {first_product} + {second_product} = {product}.",
	"building_known_facts_step4_minus": "Subtract: {first_product} − {second_product} = {product}.",
	"building_known_facts_pattern":     "Break a hard fact into easy facts, then combine the answers",

	"elevens_advanced_concept":     "To multiply {n} by 11, keep the outside digits and put their sum in the middle.",
	"elevens_advanced_step1":       "Split {n} into its digits {first_digit} and {last_digit}.",
	"elevens_advanced_step2":       "Add them: {first_digit} + {last_digit} = {sum}.",
	"elevens_advanced_step3":       "Put {sum} between {first_digit} and {last_digit}: {product}.",
	"elevens_advanced_step3_carry": "{sum} is 10 or more: keep {middle} in the middle and add the 1 to {first_digit} to get {carried}.",
	"elevens_advanced_step4_carry": "Put it together: {carried}, {middle}, {last_digit} makes {product}.",
	"elevens_advanced_pattern":     "11 × (ab) = a, (a + b), b, carrying 1 when a + b is 10 or more",
	"elevens_advanced_mnemonic":    "Split, add, and slide the sum into the middle!",

	"visual_array_concept":    "Let's draw it! {b} groups of {a} dots.",
	"visual_array_step1":      "Each row is one group of {a}.",
	"visual_array_step2":      "There are {b} rows.",
	"visual_array_step3":      "Count all the dots: {b} groups of {a} = {product}.",
	"visual_array_real_world": "It is like {b} bags with {a} apples in each: {product} apples.",

	"skip_counting_concept":  "Count by {a}s, {b} times.",
	"skip_counting_step1":    "Count by {a}: {sequence}.",
	"skip_counting_step2":    "After {b} counts you reach {product}.",
	"skip_counting_pattern":  "n × m: count by n, m times",
	"skip_counting_mnemonic": "Skip, skip, skip to the answer!",

	"decomposition_concept":       "Break {a} into tens and ones, multiply each part, then add.",
	"decomposition_step1":         "{a} = {tens} + {ones}.",
	"decomposition_step2":         "{tens} × {b} = {tens_product}.",
	"decomposition_step3":         "{ones} × {b} = {ones_product}.",
	"decomposition_step4":         "{tens_product} + {ones_product} = {product}.",
	"decomposition_pattern":       "(tens + ones) × n = tens × n + ones × n",
	"decomposition_plain_concept": "{a} × {b} means {b} groups of {a}.",
}

// DefaultTemplates returns a copy of the built-in templates.
func DefaultTemplates() map[string]string {
	out := make(map[string]string, len(defaultTemplates))
	for k, v := range defaultTemplates {
		out[k] = v
	}
	return out
}
