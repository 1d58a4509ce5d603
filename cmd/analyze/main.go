package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"reviewhub/config"
	"reviewhub/services"
	"reviewhub/utils"

	"github.com/joho/godotenv"
)

const sampleReview = `Visited this restaurant last weekend and had a terrible experience. The service was incredibly slow - we waited 45 minutes just to order. When the food finally arrived, it was cold and bland. The prices are way too high for the quality you get. The only positive was the nice ambiance, but that doesn't make up for everything else. Won't be coming back.`

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	reviewPath := flag.String("review", "", "path to a text file with the review to analyze (default: built-in sample)")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	analyzer := services.NewAnalyzerService(cfg)
	if !analyzer.Configured() {
		fmt.Fprintln(os.Stderr, "analyzer not configured:", analyzer.ConfigError())
		os.Exit(1)
	}

	review := sampleReview
	if *reviewPath != "" {
		data, err := os.ReadFile(*reviewPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read review file:", err)
			os.Exit(1)
		}
		review = string(data)
	}

	analysis, err := analyzer.Analyze(context.Background(), review)
	if err != nil {
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	fmt.Println(utils.FormatReport(analysis))
}
