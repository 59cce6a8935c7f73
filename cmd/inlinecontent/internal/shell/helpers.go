package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/config"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
)

const prompt = "content> "

func shellCmd(cmd *cobra.Command) error {
	cfg, err := internal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, `Interactive mode (type "help", Ctrl+C to exit)`)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     filepath.Join(os.TempDir(), ".inlinecontent_history"),
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(out, "Error initializing readline: %v\n", err)
		fmt.Fprintln(out, "Falling back to simple input mode...")
		simpleInteractiveMode(cfg, cmd.InOrStdin(), out)
		return nil
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nGoodbye!")
				return nil
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		if quit := evalLine(cfg, line, out); quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
}

func simpleInteractiveMode(cfg *config.Config, in io.Reader, out io.Writer) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			return
		}

		if quit := evalLine(cfg, line, out); quit {
			fmt.Fprintln(out, "Goodbye!")
			return
		}
	}
}

// evalLine runs one shell line and reports whether the session should end.
func evalLine(cfg *config.Config, line string, out io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	args, err := shellquote.Split(input)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return false
	}

	switch args[0] {
	case "exit", "quit":
		return true
	case "help":
		printHelp(out)
		return false
	case "fields":
		if len(args) != 2 {
			fmt.Fprintln(out, "Usage: fields <kind>")
			return false
		}
		kind, err := content.ParseKind(args[1])
		if err == nil {
			err = internal.WriteFields(out, kind)
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		return false
	}

	kind, err := content.ParseKind(args[0])
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return false
	}
	c, err := internal.BuildContent(cfg, kind, args[1:])
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return false
	}
	if err := internal.WriteContent(out, c, cfg.Output.Indent); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return false
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage: <kind> [key=value ...]")
	fmt.Fprint(out, "Kinds:")
	for _, k := range content.Kinds() {
		fmt.Fprintf(out, " %s", k)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, `Other commands: fields <kind>, help, exit`)
}
