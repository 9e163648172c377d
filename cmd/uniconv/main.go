package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/uniconv/convert"
	"github.com/wippyai/uniconv/width"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Read input text from file instead of arguments/stdin")
		to          = flag.String("to", "", "Transcode to encoding (utf8, utf16, utf32) and print a hex dump")
		policyName  = flag.String("policy", "replace", "Error policy: replace, skip, or stop")
		showWidth   = flag.Bool("width", false, "Print the terminal column width")
		codepoints  = flag.Bool("codepoints", false, "Dump codepoints with their individual widths")
		validate    = flag.Bool("validate", false, "Validate the input as UTF-8 and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable defect tracing on stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		convert.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	text, err := readInput(*inFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := parsePolicy(*policyName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(text, *to, policy, *showWidth, *codepoints, *validate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(inFile string, args []string) ([]byte, error) {
	if inFile != "" {
		return os.ReadFile(inFile)
	}
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	return io.ReadAll(os.Stdin)
}

func parsePolicy(name string) (convert.Policy, error) {
	switch name {
	case "replace":
		return convert.ReplaceInvalid, nil
	case "skip":
		return convert.SkipInvalid, nil
	case "stop":
		return convert.StopOnFirstError, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want replace, skip, or stop)", name)
	}
}

func run(text []byte, to string, policy convert.Policy, showWidth, codepoints, validate bool) error {
	if validate {
		if err := convert.ValidateUTF8(text); err != nil {
			return err
		}
		fmt.Println("valid utf-8")
		return nil
	}

	if showWidth {
		w, err := width.Measure(string(text))
		if err != nil {
			return err
		}
		fmt.Println(w)
		return nil
	}

	if codepoints {
		dumpCodepoints(text, policy)
		return nil
	}

	if to != "" {
		return dumpEncoding(text, to, policy)
	}

	// Default: echo the input through the replacement pipeline so
	// malformed bytes come out as U+FFFD.
	u32, _ := convert.UTF8ToUTF32(text, policy)
	out, _ := convert.UTF32ToUTF8(u32, policy)
	os.Stdout.Write(out)
	return nil
}

func dumpCodepoints(text []byte, policy convert.Policy) {
	u32, valid := convert.UTF8ToUTF32(text, policy)
	for _, r := range u32 {
		w := width.Rune(r)
		fmt.Printf("U+%04X  width=%2d  %s\n", r, w, printable(r, w))
	}
	fmt.Printf("codepoints: %d  columns: %d  valid: %v\n",
		len(u32), width.Runes(u32), valid)
}

func printable(r rune, w int) string {
	if w < 1 {
		return ""
	}
	return string(r)
}

func dumpEncoding(text []byte, to string, policy convert.Policy) error {
	var (
		out   convert.Sequence
		valid bool
	)
	src := convert.UTF8Sequence(text)
	switch to {
	case "utf8":
		out, valid = convert.Transcode(src, convert.UTF8, policy)
		for _, b := range out.Bytes {
			fmt.Printf("%02X ", b)
		}
	case "utf16":
		out, valid = convert.Transcode(src, convert.UTF16, policy)
		for _, u := range out.Units {
			fmt.Printf("%04X ", u)
		}
	case "utf32":
		out, valid = convert.Transcode(src, convert.UTF32, policy)
		for _, r := range out.Runes {
			fmt.Printf("%08X ", r)
		}
	default:
		return fmt.Errorf("unknown encoding %q (want utf8, utf16, or utf32)", to)
	}
	fmt.Printf("\nunits: %d  valid: %v\n", out.Len(), valid)
	return nil
}
