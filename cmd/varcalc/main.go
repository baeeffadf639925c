package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/varcalc/varcalc"
	"github.com/varcalc/varcalc/session"
	"github.com/varcalc/varcalc/store"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	log.SetFlags(0)
	var (
		dbpath string
		slots  int
		echo   bool
		with   [][2]string
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&dbpath, "db", ":memory:", "variable store file (default in-memory)")
	flag.IntVar(&slots, "slots", 0, "maximum number of saved variables, 0 for unlimited")
	flag.BoolVar(&echo, "echo", false, "print the postfix evaluation order before each result")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.Parse()

	vars, err := store.Open(dbpath, slots)
	if err != nil {
		log.Fatal(err)
	}
	defer vars.Close()
	c := &cli{sess: session.New(vars), vars: vars, echo: echo}

	for _, d := range with {
		r, err := varcalc.Eval(d[1], nil)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		if err := vars.Set(d[0], r); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := c.line(arg); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	scan := bufio.NewScanner(os.Stdin)
	fmt.Print(promptStyle.Render("> "))
	for scan.Scan() {
		text := scan.Text()
		if strings.TrimSpace(text) == "quit" {
			break
		}
		if err := c.line(text); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}
		fmt.Print(promptStyle.Render("> "))
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

type cli struct {
	sess *session.Session
	vars *store.Store
	echo bool
}

// line handles one input line: "vars" lists the saved variables,
// "name = expr" assigns, and anything else evaluates.
func (c *cli) line(text string) error {
	text = strings.TrimSpace(varcalc.Normalize(text))
	if text == "" {
		return nil
	}
	if text == "vars" {
		return c.list()
	}
	if name, expr, ok := splitAssign(text); ok {
		r, err := c.sess.Assign(name, expr)
		if err != nil {
			return err
		}
		fmt.Println(name, "=", session.Format(r))
		return nil
	}
	if c.echo {
		e, err := varcalc.Parse(session.Prepare(text))
		if err != nil {
			return err
		}
		fmt.Printf("%v : ", e)
	}
	r, err := c.sess.Eval(text)
	if err != nil {
		return err
	}
	fmt.Println(session.Format(r))
	return nil
}

func (c *cli) list() error {
	names, err := c.vars.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		v, ok, err := c.vars.Get(name)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println(name, "=", session.Format(v))
		}
	}
	return nil
}

// splitAssign recognizes "name = expr" lines. A trailing "=" with
// nothing after it is the enter-key convention, not an assignment.
func splitAssign(text string) (name, expr string, ok bool) {
	i := strings.Index(text, "=")
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(text[:i])
	expr = text[i+1:]
	if !varcalc.ValidName(name) || strings.TrimSpace(expr) == "" {
		return "", "", false
	}
	return name, expr, true
}
