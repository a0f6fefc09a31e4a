// Command seed populates a running scorebook instance with a coach
// and a randomized roster through the public API. Useful for trying
// the summary and report endpoints against non-trivial data.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/google/uuid"
)

type registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

type account struct {
	ID string `json:"id"`
}

type player struct {
	ID string `json:"id"`
}

var sports = []string{"cricket", "football", "basketball"}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the scorebook API")
	players := flag.Int("players", 8, "number of players to create")
	matches := flag.Int("matches", 5, "matches recorded per player")
	flag.Parse()

	if err := run(*addr, *players, *matches); err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(addr string, players, matches int) error {
	suffix := uuid.NewString()[:8]
	var coach account
	err := postJSON(addr+"/api/v1/register", registration{
		Name:            "Seed Coach " + suffix,
		Email:           "coach-" + suffix + "@scorebook.local",
		Password:        "seed-pass",
		ConfirmPassword: "seed-pass",
		Role:            "coach",
	}, &coach)
	if err != nil {
		return fmt.Errorf("register coach: %w", err)
	}

	for i := 0; i < players; i++ {
		var p player
		err := postJSON(addr+"/api/v1/coaches/"+coach.ID+"/players", map[string]string{
			"name":  fmt.Sprintf("Player %02d", i+1),
			"email": fmt.Sprintf("player%02d-%s@scorebook.local", i+1, suffix),
			"sport": sports[i%len(sports)],
		}, &p)
		if err != nil {
			return fmt.Errorf("add player %d: %w", i+1, err)
		}
		for j := 0; j < matches; j++ {
			score := 30 + rand.Float64()*70 //nolint:gosec // demo data
			if err := postJSON(addr+"/api/v1/players/"+p.ID+"/matches",
				map[string]float64{"score": score}, nil); err != nil {
				return fmt.Errorf("record match: %w", err)
			}
		}
	}

	fmt.Printf("seeded coach %s with %d players\n", coach.ID, players)
	fmt.Printf("summary: %s/api/v1/coaches/%s/summary\n", addr, coach.ID)
	fmt.Printf("report:  %s/api/v1/coaches/%s/report\n", addr, coach.ID)
	return nil
}

func postJSON(url string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
