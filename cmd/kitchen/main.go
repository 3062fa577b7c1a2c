package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"app/internal/poller"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

// キッチンディスプレイ。Orders Ready APIを1秒間隔でポーリングして表示する。
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &http.Client{Timeout: 5 * time.Second}

	fetch := func(ctx context.Context) (interface{}, int, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/orders/api", nil)
		if err != nil {
			return nil, 0, err
		}

		res, err := client.Do(req)
		if err != nil {
			return nil, 0, err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, 0, fmt.Errorf("unexpected status: %s", res.Status)
		}

		var orders []usecase.OrderOutput
		if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
			return nil, 0, err
		}
		return orders, len(orders), nil
	}

	p := poller.New(time.Second, fetch, render)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p.Run(ctx)
}

func render(v poller.View) {
	//毎tick、画面を丸ごと書き直す
	fmt.Print("\033[H\033[2J")
	fmt.Println("=== Orders Ready ===")

	if v.Err != nil {
		fmt.Printf("fetch error: %v\n", v.Err)
		return
	}

	switch v.State {
	case poller.StateLoading:
		fmt.Println("Loading...")
	case poller.StateEmpty:
		fmt.Println("No order is ready yet")
	case poller.StatePopulated:
		orders, ok := v.Items.([]usecase.OrderOutput)
		if !ok {
			return
		}
		for _, o := range orders {
			fmt.Printf("#%d  %s  %s\n", o.ID, o.Name, formatCurrency(o.Total))
			for _, item := range o.OrderProducts {
				fmt.Printf("    %dx %s\n", item.Quantity, item.Product.Name)
			}
		}
	}
}

// セント表記をドルに直す
func formatCurrency(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
