// Package cli expõe o pipeline de perguntas pela linha de comando
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/nalk-ai-api/internal/config"
	"github.com/vfg2006/nalk-ai-api/internal/usecases/processing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewRootCmd cria o comando raiz
func NewRootCmd(cfg *config.Config, processor processing.Processor) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nalk",
		Short:         "Nalk AI - perguntas sobre deals do CRM",
		Long:          "Responde perguntas em português sobre deals do CRM sem precisar subir o servidor HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAskCmd(processor))
	rootCmd.AddCommand(newAnalyzeCmd(processor))
	rootCmd.AddCommand(newSmokeCmd(processor))
	rootCmd.AddCommand(newConfigCmd(cfg))

	return rootCmd
}

// newAskCmd responde a pergunta sobre os deals de um arquivo JSON
func newAskCmd(processor processing.Processor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [PERGUNTA]",
		Short: "Responde uma pergunta sobre os deals",
		Long: `Responde uma pergunta sobre os deals lidos de um arquivo JSON (lista de registros).
Exemplo: nalk ask "Qual o valor vendido em junho de 2025?" --data deals.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath, _ := cmd.Flags().GetString("data")
			asJSON, _ := cmd.Flags().GetBool("json")

			records, err := readRecords(cmd.InOrStdin(), dataPath)
			if err != nil {
				return err
			}

			envelope := processor.Process(cmd.Context(), args[0], records)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), envelope)
			}

			fmt.Fprintln(cmd.OutOrStdout(), envelope.Answer)
			if !envelope.Success {
				return fmt.Errorf("falha no processamento: %s", envelope.Error)
			}
			return nil
		},
	}

	cmd.Flags().String("data", "-", "Arquivo JSON com os registros de deals (\"-\" para stdin)")
	cmd.Flags().Bool("json", false, "Imprime o envelope completo em JSON")

	return cmd
}

func newAnalyzeCmd(processor processing.Processor) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [PERGUNTA]",
		Short: "Mostra a análise da pergunta sem processar dados",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), processor.Analyze(args[0]))
		},
	}
}

func newSmokeCmd(processor processing.Processor) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Executa o pipeline com a carga fixa de teste",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := processor.SmokeTest(cmd.Context())
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Result == nil || !report.Result.Success {
				return fmt.Errorf("teste com dados fixos falhou")
			}
			return nil
		},
	}
}

func newConfigCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Mostra a configuração carregada",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	}
}

// Execute roda o comando raiz com o contexto informado
func Execute(ctx context.Context, cmd *cobra.Command) error {
	return cmd.ExecuteContext(ctx)
}

func readRecords(stdin io.Reader, path string) ([]map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lendo registros de %s", path)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "registros devem ser uma lista JSON de objetos")
	}

	return records, nil
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
