package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dom/rift-companion/internal/api/middleware"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	client := NewAPIClient(apiURL)

	switch command {
	case "recommend":
		recommendCmd(client, args)
	case "threats":
		threatsCmd(client, args)
	case "simulate":
		simulateCmd(client, args)
	case "stress":
		stressCmd(client)
	case "sync":
		syncCmd(client)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`riftctl - Development tool for the rift companion API

USAGE:
  riftctl <command> [options]

COMMANDS:
  recommend  Rank items for a champion against an enemy roster
  threats    Show the threat profile of an enemy roster
  simulate   Compare two team compositions
  stress     Run the reference scenarios and fail if any yields nothing
  sync       Re-seed the server catalog (needs ADMIN_JWT_SECRET)
  help       Show this help message

ENVIRONMENT:
  API_URL           Backend API URL (default: http://localhost:8080)
  ADMIN_JWT_SECRET  Secret used to sign the admin token for sync

EXAMPLES:
  riftctl recommend --champion=zed --vs=malphite,braum,ornn --gold=5000 --minutes=15
  riftctl threats --vs=zed,ahri,darius
  riftctl simulate --own=jinx,braum,malphite --opposing=zed,akali,ekko`)
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func fail(format string, args ...interface{}) {
	fmt.Printf("Error: "+format+"\n", args...)
	os.Exit(1)
}

func recommendCmd(client *APIClient, args []string) {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	champion := fs.String("champion", "", "Your champion ID")
	vs := fs.String("vs", "", "Comma-separated enemy champion IDs")
	gold := fs.Int("gold", 0, "Current gold")
	minutes := fs.Float64("minutes", 0, "Elapsed game minutes")
	standing := fs.String("standing", "even", "ahead, even or behind")
	fs.Parse(args)

	if *champion == "" {
		fail("--champion is required")
	}

	result, err := client.RecommendBuild(service.BuildRequest{
		ChampionID:     *champion,
		OpponentIDs:    splitIDs(*vs),
		Gold:           *gold,
		ElapsedMinutes: *minutes,
		Standing:       domain.Standing(*standing),
	})
	if err != nil {
		fail("%v", err)
	}

	printThreats(&result.Threats)
	printRecommendations(result.Recommendations)
}

func threatsCmd(client *APIClient, args []string) {
	fs := flag.NewFlagSet("threats", flag.ExitOnError)
	vs := fs.String("vs", "", "Comma-separated enemy champion IDs")
	fs.Parse(args)

	profile, err := client.AnalyzeThreats(splitIDs(*vs))
	if err != nil {
		fail("%v", err)
	}
	printThreats(profile)
}

func simulateCmd(client *APIClient, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	own := fs.String("own", "", "Comma-separated champion IDs of your team")
	opposing := fs.String("opposing", "", "Comma-separated champion IDs of the enemy team")
	fs.Parse(args)

	result, err := client.SimulateComposition(service.CompositionRequest{
		OwnIDs:      splitIDs(*own),
		OpposingIDs: splitIDs(*opposing),
	})
	if err != nil {
		fail("%v", err)
	}

	p := result.Profile
	fmt.Printf("Win probability: %.1f%%\n", result.WinProbability)
	fmt.Printf("Win condition:   %s\n", result.WinCondition)
	fmt.Printf("Profile:         damage %.1f  durability %.1f  cc %.1f  mobility %.1f  scaling %.1f\n",
		p.Damage, p.Durability, p.CrowdControl, p.Mobility, p.Scaling)
	fmt.Printf("Strengths:       %s\n", strings.Join(result.Strengths, ", "))
	fmt.Printf("Vulnerabilities: %s\n", strings.Join(result.Vulnerabilities, ", "))
}

type scenario struct {
	name string
	req  service.BuildRequest
}

var stressScenarios = []scenario{
	{
		name: "AD assassin vs triple tank",
		req: service.BuildRequest{
			ChampionID:     "zed",
			OpponentIDs:    []string{"malphite", "braum", "ornn"},
			Gold:           5000,
			ElapsedMinutes: 15,
			Standing:       domain.StandingEven,
		},
	},
	{
		name: "Squishy mage vs full-burst AP while behind",
		req: service.BuildRequest{
			ChampionID:     "lux",
			OpponentIDs:    []string{"akali", "evelynn", "katarina"},
			Gold:           3000,
			ElapsedMinutes: 10,
			Standing:       domain.StandingBehind,
		},
	},
	{
		name: "Marksman vs full AD while ahead",
		req: service.BuildRequest{
			ChampionID:     "jinx",
			OpponentIDs:    []string{"zed", "draven", "caitlyn", "darius", "garen"},
			Gold:           10000,
			ElapsedMinutes: 20,
			Standing:       domain.StandingAhead,
		},
	},
}

func stressCmd(client *APIClient) {
	fmt.Println("=== Build Recommender: Stress Scenarios ===")

	failed := 0
	for i, sc := range stressScenarios {
		fmt.Println()
		fmt.Printf("[%d/%d] %s\n", i+1, len(stressScenarios), sc.name)

		result, err := client.RecommendBuild(sc.req)
		if err != nil {
			fmt.Printf("  FAILED: %v\n", err)
			failed++
			continue
		}
		if len(result.Recommendations) == 0 {
			fmt.Println("  FAILED: no recommendations")
			failed++
			continue
		}
		printRecommendations(result.Recommendations)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d scenarios failed\n", failed, len(stressScenarios))
		os.Exit(1)
	}
	fmt.Println("All scenarios produced recommendations")
}

func syncCmd(client *APIClient) {
	secret := os.Getenv("ADMIN_JWT_SECRET")
	if secret == "" {
		fail("ADMIN_JWT_SECRET is not set")
	}

	token, err := middleware.IssueAdminToken("riftctl", secret, 5*time.Minute)
	if err != nil {
		fail("failed to sign admin token: %v", err)
	}

	result, err := client.SyncCatalog(token)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Catalog %s synced: %d champions, %d items, %d runes\n",
		result.Version, result.Champions, result.Items, result.Runes)
}

func printThreats(t *domain.ThreatProfile) {
	fmt.Printf("Threats: physical %.1f  magical %.1f  cc %.1f  durability %.1f  burst %.1f\n",
		t.Physical, t.Magical, t.CrowdControl, t.Durability, t.Burst)
}

func printRecommendations(recs []domain.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("  (no recommendations)")
		return
	}
	for i, rec := range recs {
		fmt.Printf("  %d. %-28s %5d gold  score %4.0f", i+1, rec.Item.Name, rec.Item.Cost, rec.Score)
		if rec.Reason != "" {
			fmt.Printf("  %s", rec.Reason)
		}
		fmt.Println()
	}
}
