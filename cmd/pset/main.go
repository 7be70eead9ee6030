// pset applies set algebra to comma separated lists of literals and prints the
// resulting sets in ascending order.
//
//	pset union 3,1,2 2,5
//	pset --type=string diff b,a,c a
//	pset partition 1,2,3,4 2
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type request struct {
	command string
	lists   []string
	value   string
	modulus int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pset: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("pset", "Persistent ordered set calculator.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	elemType := app.Flag("type", "element type: int, float or string").Default("int").Envar("PSET_TYPE").Enum("int", "float", "string")
	verbose := app.Flag("verbose", "log each step to stderr").Short('v').Envar("PSET_VERBOSE").Bool()

	build := app.Command("build", "print the set built from a list")
	buildList := build.Arg("list", "comma separated elements").Required().String()

	member := app.Command("member", "report whether a value belongs to a set")
	memberList := member.Arg("list", "comma separated elements").Required().String()
	memberValue := member.Arg("value", "value to look for").Required().String()

	binary := map[string][2]*string{}
	for _, op := range []struct{ name, help string }{
		{"union", "members of either set"},
		{"intersect", "members of both sets"},
		{"diff", "members of the first set missing from the second"},
	} {
		cmd := app.Command(op.name, op.help)
		binary[op.name] = [2]*string{
			cmd.Arg("a", "first set").Required().String(),
			cmd.Arg("b", "second set").Required().String(),
		}
	}

	partition := app.Command("partition", "split a set into the members above a pivot and the rest")
	partitionList := partition.Arg("list", "comma separated elements").Required().String()
	partitionPivot := partition.Arg("pivot", "pivot value").Required().String()

	mod := app.Command("mod", "map every member to its remainder modulo n (int only)")
	modList := mod.Arg("list", "comma separated elements").Required().String()
	modN := mod.Arg("n", "modulus").Required().Int()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	req := request{command: command}
	switch command {
	case build.FullCommand():
		req.lists = []string{*buildList}
	case member.FullCommand():
		req.lists, req.value = []string{*memberList}, *memberValue
	case partition.FullCommand():
		req.lists, req.value = []string{*partitionList}, *partitionPivot
	case mod.FullCommand():
		req.lists, req.modulus = []string{*modList}, *modN
	default:
		ab := binary[command]
		req.lists = []string{*ab[0], *ab[1]}
	}

	entry := log.WithFields(logrus.Fields{"command": command, "type": *elemType})
	entry.Debug("running")

	switch *elemType {
	case "float":
		return execute(entry, req, parseFloat, stdout)
	case "string":
		return execute(entry, req, parseString, stdout)
	default:
		return execute(entry, req, parseInt, stdout)
	}
}
