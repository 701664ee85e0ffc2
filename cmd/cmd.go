package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tlvscope/tlvscope/engine"
	"github.com/tlvscope/tlvscope/log"
	"github.com/tlvscope/tlvscope/qris"
	"github.com/tlvscope/tlvscope/tlv"
)

const Version = "0.9.0"

const banner = `
  _   _
 | |_| |_   _____ ___ ___  _ __   ___
 | __| | \ / / __/ __/ _ \| '_ \ / _ \
 | |_| |\ V /\__ \ (_| (_) | |_) |  __/
  \__|_| \_/ |___/\___\___/| .__/ \___|
                           |_|

QRIS and BER-TLV payload inspector
`

var CmdRoot = &cobra.Command{
	Use:     "tlvscope",
	Short:   "QRIS and BER-TLV payload inspector",
	Long:    banner[1:],
	Version: Version,
}

type decodeTool struct {
	format  string
	jsonOut bool
	config  string
}

var toolDecode = decodeTool{}
var cmdDecode = &cobra.Command{
	GroupID: "decode",
	Use:     "decode [payload]",
	Short:   "Decode a QRIS or BER-TLV payload",
	Long: `Decode a QRIS or BER-TLV payload into its field tree.
The payload is read from the argument, or from standard input when absent.`,
	Args:    cobra.MaximumNArgs(1),
	Example: `  tlvscope decode 6F0E8407A0000000031010 --format ber-hex`,
	Run:     toolDecode.run,
}

var cmdDetect = &cobra.Command{
	GroupID: "decode",
	Use:     "detect [payload]",
	Short:   "Report the detected payload format",
	Args:    cobra.MaximumNArgs(1),
	Example: `  tlvscope detect WgMRIjM=`,
	Run:     runDetect,
}

var cmdSample = &cobra.Command{
	GroupID: "decode",
	Use:     "sample",
	Short:   "Print a valid synthetic QRIS payload",
	Long: `Print a structurally valid, CRC-correct QRIS payload.
Useful as decode input and for verifying the CRC round trip.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(qris.BuildSample())
	},
}

func init() {
	cobra.EnableCommandSorting = false
	CmdRoot.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdRoot.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdRoot.PersistentFlags().Lookup("help").Hidden = true

	cmdDecode.Flags().StringVarP(&toolDecode.format, "format", "f", "auto",
		"payload format: auto, qris, ber-hex or ber-base64")
	cmdDecode.Flags().BoolVar(&toolDecode.jsonOut, "json", false,
		"print the JSON tree instead of the row table")
	cmdDecode.Flags().StringVarP(&toolDecode.config, "config", "c", "",
		"YAML configuration file with parse limits")

	CmdRoot.AddGroup(&cobra.Group{ID: "decode", Title: "Decoding"})
	CmdRoot.AddCommand(cmdDecode)
	CmdRoot.AddCommand(cmdDetect)
	CmdRoot.AddCommand(cmdSample)
}

func payloadArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read standard input: %+v\n", err)
		os.Exit(1)
	}
	return string(data)
}

func (t *decodeTool) run(cmd *cobra.Command, args []string) {
	limits := readConfig(t.config).apply()
	payload := payloadArg(args)

	res, err := engine.ParseWithLimits(payload, engine.Format(t.format), limits)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Debug("decoded payload",
		"format", res.Format,
		"nodes", res.Summary.NodeCount,
		"maxDepth", res.Summary.MaxDepth)

	if t.jsonOut {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	printRows(res)
}

func runDetect(cmd *cobra.Command, args []string) {
	fmt.Println(engine.DetectFormat(payloadArg(args)))
}

func printRows(res *tlv.Result) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTAG\tNAME\tLEN\tVALUE\tNOTE")
	for _, r := range res.Rows {
		indent := strings.Repeat("  ", r.Depth)
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%d\t%s\t%s\n",
			r.Index, indent, r.Tag, r.Name, r.Length, r.Value, r.Note)
	}
	w.Flush()

	fmt.Printf("\n%d node(s), %d top-level, max depth %d, input length %d\n",
		res.Summary.NodeCount, res.Summary.TopLevelCount,
		res.Summary.MaxDepth, res.Summary.InputLength)

	if res.Crc != nil && res.Crc.Present {
		status := "OK"
		if !res.Crc.Valid {
			status = fmt.Sprintf("MISMATCH (expected %s, got %s)",
				res.Crc.Expected, res.Crc.Actual)
		}
		fmt.Printf("CRC: %s\n", status)
	}
	for _, issue := range res.Validation {
		fmt.Printf("%s: %s\n", issue.Level, issue.Message)
	}
}
