// anagram-search generates multi-word anagrams of a goal phrase from a
// word list and prints the most rearranged ones first.
//
//	anagram-search -g "listen" -w /usr/share/dict/words
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	engine "github.com/42atomys/go-anagram-search"
)

func main() {
	var (
		goal       = flag.String("g", "", "goal phrase to anagrammatize (required)")
		wordfile   = flag.String("w", "", "newline-delimited word list, .gz accepted (required)")
		minLength  = flag.Int("m", engine.DefaultMinWordLength, "minimum byte length of a candidate word")
		maxWords   = flag.Int("M", engine.DefaultMaxWords, "maximum number of words in one anagram")
		maxResults = flag.Int("c", engine.DefaultMaxResults, "how many ranked anagrams to print")
		workers    = flag.Int("workers", 0, "parallel search branches (0 = auto)")
		verbose    = flag.Bool("v", false, "enable debug logging")
		doProfile  = flag.Bool("profile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}
	if *goal == "" || *wordfile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *doProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	run(*goal, *wordfile, *minLength, *maxWords, *maxResults, *workers)
}

func run(goal, wordfile string, minLength, maxWords, maxResults, workers int) {
	e := engine.NewEngine(engine.Options{
		Goal:          goal,
		MinWordLength: minLength,
		MaxWords:      maxWords,
		MaxResults:    maxResults,
		Workers:       workers,
	})

	// progress goes to stdout per the output contract; color drops out
	// automatically when stdout is not a terminal
	progress := color.New(color.FgCyan)

	progress.Println("Reading candidate words...")
	n, err := e.LoadDictionary(wordfile)
	if err != nil {
		gologger.Fatal().Msgf("anagram-search: %v", err)
	}
	gologger.Debug().Msgf("indexed %d words from %s", n, wordfile)

	progress.Println("Creating anagrams...")
	phrases := e.Anagrams()
	gologger.Debug().Msgf("expanded %d candidate phrases", len(phrases))

	progress.Println("Sorting anagrams...")
	ranked := e.Rank(phrases)

	fmt.Println()
	for _, r := range ranked {
		fmt.Println(r.Phrase)
	}
}
