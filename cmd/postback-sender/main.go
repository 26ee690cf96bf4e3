// Command postback-sender signs a postback the way Timewall does and sends it
// to a running relay, for manual end-to-end checks.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/timewall-relay/postback-relay/internal/postback"
)

func main() {
	target := flag.String("url", "http://localhost:3001/timewall-postback", "relay postback endpoint")
	secret := flag.String("secret", os.Getenv("TIMEWALL"), "shared secret, defaults to $TIMEWALL")
	userID := flag.String("user", "telegram_1", "user id")
	revenue := flag.Float64("revenue", 0.5, "revenue in USD")
	amount := flag.String("amount", "1.25", "currency amount in USD")
	eventType := flag.String("type", "credit", "credit or chargeback")
	transactionID := flag.String("tx", "", "transaction id, generated when empty")
	flag.Parse()

	if *transactionID == "" {
		*transactionID = "dev-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	query := url.Values{
		"userid":         {*userID},
		"revenue":        {postback.FormatNumber(*revenue)},
		"transactionid":  {*transactionID},
		"type":           {*eventType},
		"currencyAmount": {*amount},
		"hash":           {postback.Sign(*userID, *revenue, *secret)},
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(*target + "?" + query.Encode())
	if err != nil {
		log.Fatalf("postback failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%d %s\n", resp.StatusCode, body)
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
