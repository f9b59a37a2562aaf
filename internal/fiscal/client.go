package fiscal

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"sambapos/internal/ticket"
)

// ValidationData is what a successful eTIMS sales registration returns.
type ValidationData struct {
	InvoiceNumber    string `json:"etims_invoice_number"`
	VerificationCode string `json:"verification_code"`
	QRCodeData       string `json:"qr_code_data"`
}

// SalesSubmitter registers one finalized ticket with the tax authority.
type SalesSubmitter interface {
	SubmitSale(ctx context.Context, t ticket.Ticket) (*ValidationData, error)
}

// salesTransaction is the KRA eTIMS sendSalesTrns payload shape.
type salesTransaction struct {
	TIN        string      `json:"tin"`
	BranchID   string      `json:"bhfId"`
	InvoiceNo  string      `json:"invcNo"`
	SalesItems []salesItem `json:"salesTrnsItems"`
}

type salesItem struct {
	ItemCode     string  `json:"itemCd"`
	ItemName     string  `json:"itemNm"`
	Quantity     int     `json:"qty"`
	Price        float64 `json:"prc"`
	SupplyAmount float64 `json:"splyAmt"`
	TaxTypeCode  string  `json:"taxTyCd"`
	TaxAmount    float64 `json:"taxAmt"`
}

// Client simulates the KRA eTIMS OSCU API: token authentication with an
// expiry buffer, network latency, and occasional hard failures. Payment never
// waits on it; the registrar worker owns all calls.
type Client struct {
	tin      string
	branchID string
	taxRate  float64

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(tin, branchID string, taxRate float64) *Client {
	return &Client{tin: tin, branchID: branchID, taxRate: taxRate}
}

const (
	authDelay    = 500 * time.Millisecond
	requestDelay = time.Second
	tokenBuffer  = 5 * time.Minute
	failureRate  = 0.1
)

func (c *Client) SubmitSale(ctx context.Context, t ticket.Ticket) (*ValidationData, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	payload := c.buildPayload(t)

	if err := sleep(ctx, requestDelay); err != nil {
		return nil, err
	}

	if rand.Float64() < failureRate {
		return nil, fmt.Errorf("etims api error: resultCd=9999 could not reach the ETIMS server")
	}

	suffix := payload.InvoiceNo
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	stamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	invoice := fmt.Sprintf("ETIMS-%s-%s", suffix, stamp[len(stamp)-4:])
	code := verificationCode()

	return &ValidationData{
		InvoiceNumber:    invoice,
		VerificationCode: code,
		QRCodeData:       fmt.Sprintf("https://etims.kra.go.ke/verify?inv=%s&code=%s", invoice, code),
	}, nil
}

func (c *Client) buildPayload(t ticket.Ticket) salesTransaction {
	items := make([]salesItem, 0, len(t.Items))
	for _, line := range t.Items {
		supply := line.MenuItem.Price * float64(line.Quantity)
		items = append(items, salesItem{
			ItemCode:     line.MenuItem.ID,
			ItemName:     line.MenuItem.Name,
			Quantity:     line.Quantity,
			Price:        line.MenuItem.Price,
			SupplyAmount: supply,
			TaxTypeCode:  "A",
			TaxAmount:    supply * c.taxRate,
		})
	}
	return salesTransaction{
		TIN:        c.tin,
		BranchID:   c.branchID,
		InvoiceNo:  t.ID,
		SalesItems: items,
	}
}

// ensureToken authenticates when the cached token is absent or inside the
// expiry buffer.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	valid := c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenBuffer))
	c.mu.Unlock()
	if valid {
		return nil
	}

	if err := sleep(ctx, authDelay); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = fmt.Sprintf("mock_access_token_%d", time.Now().UnixMilli())
	c.tokenExpiry = time.Now().Add(time.Hour)
	c.mu.Unlock()
	return nil
}

func verificationCode() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
