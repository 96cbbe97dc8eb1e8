package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"modelbridge/pkg/types"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildRootCmd constructs the Cobra command tree talking to a running bridged.
func buildRootCmd() *cobra.Command {
	var addr string

	root := &cobra.Command{
		Use:           "bridgectl",
		Short:         "Client for the bridged daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", envOr("BRIDGECTL_ADDR", "http://127.0.0.1:8080"), "Base URL of the bridged daemon")

	client := &http.Client{Timeout: 60 * time.Second}

	statusCmd := &cobra.Command{Use: "status", Short: "Show entry points and readiness", RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(client, addr+"/status", cmd.OutOrStdout())
	}}

	modelsCmd := &cobra.Command{Use: "models", Short: "List discovered models", RunE: func(cmd *cobra.Command, args []string) error {
		return getJSON(client, addr+"/models", cmd.OutOrStdout())
	}}

	var inputsJSON string
	executeCmd := &cobra.Command{Use: "execute <method>", Short: "Invoke a method with tagged JSON inputs", Example: `  bridgectl execute forward --inputs '[{"type":4,"int":21}]'`, Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		var inputs []types.TaggedValue
		if inputsJSON != "" {
			if err := json.Unmarshal([]byte(inputsJSON), &inputs); err != nil {
				return fmt.Errorf("invalid --inputs: %w", err)
			}
		}
		body, err := json.Marshal(types.ExecuteRequest{Method: args[0], Inputs: inputs})
		if err != nil {
			return err
		}
		return postJSON(client, addr+"/execute", body, cmd.OutOrStdout())
	}}
	executeCmd.Flags().StringVar(&inputsJSON, "inputs", "", "JSON array of tagged input values")

	loadMethodCmd := &cobra.Command{Use: "load-method <method>", Short: "Load a named method on the module", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		body, _ := json.Marshal(types.MethodRequest{Method: args[0]})
		return postJSON(client, addr+"/loadMethod", body, cmd.OutOrStdout())
	}}

	loadCmd := &cobra.Command{Use: "load", Short: "Load the generation runner", RunE: func(cmd *cobra.Command, args []string) error {
		return postJSON(client, addr+"/load", []byte("{}"), cmd.OutOrStdout())
	}}

	generateCmd := &cobra.Command{Use: "generate <prompt...>", Short: "Stream generated tokens", Example: `  bridgectl generate "Write a haiku about the ocean."`, Args: cobra.MinimumNArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		body, _ := json.Marshal(types.GenerateRequest{Prompt: strings.Join(args, " ")})
		return streamGenerate(client, addr+"/generate", body, cmd.OutOrStdout())
	}}

	stopCmd := &cobra.Command{Use: "stop", Short: "Stop an in-flight generation", RunE: func(cmd *cobra.Command, args []string) error {
		return postJSON(client, addr+"/stop", nil, cmd.OutOrStdout())
	}}

	root.AddCommand(statusCmd, modelsCmd, executeCmd, loadMethodCmd, loadCmd, generateCmd, stopCmd)
	return root
}

func getJSON(client *http.Client, url string, out io.Writer) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(resp, out)
}

func postJSON(client *http.Client, url string, body []byte, out io.Writer) error {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(resp, out)
}

func printResponse(resp *http.Response, out io.Writer) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr types.ErrorResponse
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	// Re-indent for readability
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		_, _ = out.Write(b)
		return nil
	}
	fmt.Fprintln(out, buf.String())
	return nil
}

// streamGenerate prints tokens as they arrive, then a summary line from the
// final stats record.
func streamGenerate(client *http.Client, url string, body []byte, out io.Writer) error {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		var apiErr types.ErrorResponse
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := sc.Bytes()
		var stats types.StatsLine
		if err := json.Unmarshal(line, &stats); err == nil && stats.Done {
			fmt.Fprintf(out, "\n[done status=%d %.2f tok/s]\n", stats.Status, stats.TokensPerSecond)
			continue
		}
		var tok types.TokenLine
		if err := json.Unmarshal(line, &tok); err == nil {
			fmt.Fprint(out, tok.Token)
		}
	}
	return sc.Err()
}
