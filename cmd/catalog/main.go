package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"quizmaker/internal/config"
	"quizmaker/internal/database"
	"quizmaker/internal/repository"
	"quizmaker/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	unpublishCmd := flag.NewFlagSet("unpublish", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: tests_YYYYMMDD_HHMMSS.json)")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Delete all tests before import (WARNING: destructive)")

	unpublishID := unpublishCmd.String("id", "", "Test id (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewTestRepository(db)
	catalog := service.NewCatalogService(repo)
	ctx := context.Background()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(ctx, catalog, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(ctx, catalog, *importInput, *importClear)

	case "unpublish":
		unpublishCmd.Parse(os.Args[2:])
		if *unpublishID == "" {
			fmt.Println("Error: -id flag is required")
			unpublishCmd.PrintDefaults()
			os.Exit(1)
		}
		if err := repo.SetPublished(ctx, *unpublishID, false); err != nil {
			log.Fatalf("Unpublish failed: %v", err)
		}
		log.Printf("Test %s unpublished", *unpublishID)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(ctx context.Context, catalog *service.CatalogService, outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("tests_%s.json", time.Now().Format("20060102_150405"))
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	log.Printf("Exporting tests to: %s", outputPath)
	n, err := catalog.Export(ctx, outputPath)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Export complete! %d tests written", n)
}

func handleImport(ctx context.Context, catalog *service.CatalogService, inputPath string, clear bool) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	if clear {
		fmt.Print("WARNING: This will delete all existing tests. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}
	}

	log.Printf("Importing tests from: %s", inputPath)
	n, err := catalog.Import(ctx, inputPath, clear)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Import complete! %d tests saved", n)
}

func printUsage() {
	fmt.Println("QuizMaker Test Catalog Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  catalog export [options]       Export every test to a JSON file")
	fmt.Println("  catalog import [options]       Import tests from a JSON file")
	fmt.Println("  catalog unpublish -id <id>     Hide a test from students")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: tests_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Delete all tests before import (WARNING: destructive)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./quizmaker.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
}
