package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/app"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/cache"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/chat"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/config"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/llm"
	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := llm.NewGemini(ctx, cfg.APIKey, cfg.Model, llm.Options{RPS: cfg.RPS, Burst: cfg.Burst})
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer gw.Close()

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open garden store: %v", err)
	}
	defer st.Close()

	idCache, err := cache.NewIdentifyCache(cfg.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create identify cache: %v", err)
	}

	a := app.New(gw, st, app.WithIdentifyCache(idCache))
	if err := a.Init(ctx); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	fmt.Println("GreenThumbAI. Commands: identify <file> | diagnose <file> [zip] | products | save | garden [query] | remove <id> | chat <text> | quit")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := run(ctx, a, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		if ctx.Err() != nil {
			break
		}
	}
}

func run(ctx context.Context, a *app.App, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "identify":
		if rest == "" {
			return fmt.Errorf("usage: identify <file>")
		}
		image, err := os.ReadFile(rest)
		if err != nil {
			return err
		}
		info, err := a.Identify(ctx, image)
		if err != nil {
			fmt.Println(a.State().Identify.Err)
			return nil
		}
		fmt.Printf("%s (%s)\n%s\n", info.Name, info.ScientificName, info.Description)
		fmt.Printf("  water: %s\n  light: %s\n  soil: %s\n  temperature: %s\n", info.Care.Water, info.Care.Light, info.Care.Soil, info.Care.Temperature)
		fmt.Printf("  fun fact: %s\n", info.FunFact)
		if a.IsSaved(info.Name, info.ScientificName) {
			fmt.Println("  already in your garden")
		} else {
			fmt.Println("  type 'save' to add it to your garden")
		}

	case "diagnose":
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			return fmt.Errorf("usage: diagnose <file> [zip]")
		}
		zip := ""
		if len(parts) > 1 {
			zip = parts[1]
		}
		image, err := os.ReadFile(parts[0])
		if err != nil {
			return err
		}
		result, err := a.Diagnose(ctx, image, zip)
		if err != nil {
			st := a.State()
			if st.ZipError != "" {
				fmt.Println(st.ZipError)
			} else {
				fmt.Println(st.Diagnose.Err)
			}
			return nil
		}
		fmt.Printf("status: %s\n%s\n", result.HealthStatus, result.Diagnosis)
		for _, s := range result.Symptoms {
			fmt.Printf("  symptom: %s\n", s)
		}
		for _, tr := range result.Treatment {
			fmt.Printf("  treatment: %s\n", tr)
		}
		fmt.Printf("  prevention: %s\n", result.Prevention)
		if a.CanSearchProducts() {
			fmt.Println("  type 'products' to search for treatment products")
		}

	case "products":
		result, err := a.SearchProducts(ctx)
		if err != nil {
			if errors.Is(err, app.ErrValidation) {
				return err
			}
			fmt.Println("No products found.")
			return nil
		}
		if len(result.Products) == 0 {
			fmt.Println(result.RawText)
		}
		for _, p := range result.Products {
			fmt.Printf("%s  %s\n  %s\n", p.Name, p.Price, p.Description)
			if p.ProductURL != "" {
				fmt.Printf("  %s\n", p.ProductURL)
			}
		}
		for _, c := range result.GroundingChunks {
			if c.Web != nil {
				fmt.Printf("  source: %s (%s)\n", c.Web.Title, c.Web.URI)
			}
		}

	case "save":
		plant, err := a.SaveIdentified(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s (id %s)\n", plant.Name, plant.ID)

	case "garden":
		plants := a.FilterGarden(rest)
		if len(plants) == 0 {
			fmt.Println("Your garden is empty.")
		}
		for _, p := range plants {
			fmt.Printf("%s  %s (%s)\n", p.ID, p.Name, p.ScientificName)
		}

	case "remove":
		if rest == "" {
			return fmt.Errorf("usage: remove <id>")
		}
		if err := a.Remove(ctx, rest); err != nil {
			return err
		}
		fmt.Println("removed")

	case "chat":
		if rest == "" {
			return fmt.Errorf("usage: chat <text>")
		}
		msg, _ := a.SendMessage(ctx, rest)
		printMessage(msg.Text)
		for _, c := range msg.GroundingChunks {
			if c.Web != nil {
				fmt.Printf("  source: %s (%s)\n", c.Web.Title, c.Web.URI)
			}
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printMessage(text string) {
	for _, seg := range chat.Segments(text) {
		if seg.Image != nil {
			fmt.Printf("[image: %s %s]\n", seg.Image.Alt, seg.Image.URL)
			continue
		}
		fmt.Print(seg.Text)
	}
	fmt.Println()
}
