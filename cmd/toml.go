package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/capyflow/tomlfmt/internal/fsutil"
	"github.com/capyflow/tomlfmt/internal/toml"
	"github.com/capyflow/tomlfmt/internal/tomlparse"
)

type TomlParams struct {
	Find   string // dotted key path to print instead of the whole document
	Input  string // input file path
	Output string // output file path; stdout when empty
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml formatting tools",
}

var tomlFmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "reformat a toml document",
	Run:   tomlFmtRun,
}

func init() {
	params = &TomlParams{}
	tomlFmtCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted key path to print instead of the whole document")
	tomlFmtCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlFmtCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output file path")
	tomlCmd.AddCommand(tomlFmtCmd)
}

func tomlFmtRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := fsutil.CheckFileExist(params.Input)
	if err != nil {
		logger.Error("check file exist", "path", params.Input, "error", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	f, err := os.Open(params.Input)
	if err != nil {
		logger.Error("open input file", "path", params.Input, "error", err)
		return
	}
	defer f.Close()

	root, err := tomlparse.Parse(f)
	if err != nil {
		logger.Error("parse toml", "error", err)
		return
	}

	spec := toml.DefaultSpec()
	rootVal := toml.TableValue(root)

	var out string
	if params.Find != "" {
		path := strings.Split(params.Find, ".")
		v, ok := tomlparse.Get(root, path...)
		if !ok {
			fmt.Println("key not found:", params.Find)
			return
		}
		out, err = spec.FormatPath(path, v)
	} else {
		out, err = spec.Format(rootVal)
	}
	if err != nil {
		logger.Error("format toml", "error", err)
		return
	}

	if params.Output == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(params.Output, []byte(out), 0o644); err != nil {
		logger.Error("write output file", "path", params.Output, "error", err)
	}
}
