package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "pcb-advisor/internal/application"
	"pcb-advisor/internal/domain/entity"
	"pcb-advisor/internal/infrastructure/vision"
)

var (
	option         int
	asJSON         bool
	backend        string
	thresholdsFile string
)

var rootCmd = &cobra.Command{
	Use:   "pcb-advisor <image>",
	Short: "Подбор проверок качества и сертификаций по фото платы",
	Long: `Анализирует фотографию печатной платы и выводит симулированные
рекомендации: профиль платы, проверки качества, сертификации.

Опции анализа:
  1 — качество и сертификация (по умолчанию)
  2 — только проверки качества
  3 — только сертификация`,
	Example: `  # Полный анализ с текстовым отчётом
  pcb-advisor board.jpg

  # Только сертификация, вывод в JSON
  pcb-advisor board.jpg --option 3 --json

  # Свои пороги классификации
  pcb-advisor board.jpg --thresholds thresholds.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageData, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		thresholds, err := vision.LoadThresholds(thresholdsFile)
		if err != nil {
			return err
		}

		extractor, err := vision.NewExtractor(backend, thresholds)
		if err != nil {
			return err
		}

		analyzer := app.NewAnalyzerService(extractor)
		result := analyzer.Analyze(cmd.Context(), imageData, entity.AnalysisOption(option))

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Details)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&option, "option", "o", 1, "опция анализа: 1, 2 или 3")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "вывести результат в JSON")
	rootCmd.Flags().StringVar(&backend, "backend", "std", "бэкенд извлечения признаков: std или gocv")
	rootCmd.Flags().StringVar(&thresholdsFile, "thresholds", "", "YAML-файл с порогами классификации")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
