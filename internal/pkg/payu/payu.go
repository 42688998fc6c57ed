// Package payu builds the redirect form for the PayU hosted checkout and
// parses its callbacks. The gateway itself is treated as an opaque box: we
// hand it a signed form, it posts back success or failure.
package payu

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Key         string
	Salt        string
	Environment string // "test" or "live"
	BaseURL     string
}

// PaymentRequest carries everything the frontend needs to redirect the
// customer to the gateway.
type PaymentRequest struct {
	URL    string            `json:"url"`
	TxnID  string            `json:"txnid"`
	Fields map[string]string `json:"fields"`
}

type BookingInfo struct {
	BookingID     int64
	Amount        float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VenueName     string
	SuccessURL    string
	FailureURL    string
}

// NewPaymentRequest assembles the signed checkout form. The transaction id
// embeds the booking id so callbacks can be correlated without extra state.
func NewPaymentRequest(cfg Config, b BookingInfo) PaymentRequest {
	txnid := fmt.Sprintf("TXN_%d_%d", b.BookingID, time.Now().UnixMilli())
	amount := strconv.FormatFloat(b.Amount, 'f', 2, 64)
	productInfo := "Venue Booking - " + b.VenueName
	udf1 := strconv.FormatInt(b.BookingID, 10)

	fields := map[string]string{
		"key":         cfg.Key,
		"txnid":       txnid,
		"amount":      amount,
		"productinfo": productInfo,
		"firstname":   b.CustomerName,
		"email":       b.CustomerEmail,
		"phone":       b.CustomerPhone,
		"surl":        b.SuccessURL,
		"furl":        b.FailureURL,
		"udf1":        udf1,
	}
	fields["hash"] = requestHash(cfg, fields)

	path := "/test/_payment"
	if cfg.Environment == "live" {
		path = "/_payment"
	}

	return PaymentRequest{
		URL:    strings.TrimRight(cfg.BaseURL, "/") + path,
		TxnID:  txnid,
		Fields: fields,
	}
}

// requestHash is the gateway's sha512 field chain:
// key|txnid|amount|productinfo|firstname|email|udf1|udf2|...|udf5||||||salt
func requestHash(cfg Config, f map[string]string) string {
	parts := []string{
		f["key"], f["txnid"], f["amount"], f["productinfo"],
		f["firstname"], f["email"],
		f["udf1"], f["udf2"], f["udf3"], f["udf4"], f["udf5"],
		"", "", "", "", "",
		cfg.Salt,
	}
	sum := sha512.Sum512([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// CallbackResult is the interpreted gateway callback.
type CallbackResult struct {
	Succeeded     bool
	TransactionID string
	BookingID     int64
	Amount        float64
}

// ParseCallback interprets the form the gateway posts back. The booking id
// rides in udf1. An unparseable callback returns an error; the caller must
// not touch payment state in that case.
func ParseCallback(form url.Values) (*CallbackResult, error) {
	txnid := form.Get("txnid")
	udf1 := form.Get("udf1")
	if txnid == "" || udf1 == "" {
		return nil, fmt.Errorf("payu callback missing txnid/udf1")
	}

	bookingID, err := strconv.ParseInt(udf1, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("payu callback invalid booking reference %q", udf1)
	}

	amount, _ := strconv.ParseFloat(form.Get("amount"), 64)

	return &CallbackResult{
		Succeeded:     strings.EqualFold(form.Get("status"), "success"),
		TransactionID: txnid,
		BookingID:     bookingID,
		Amount:        amount,
	}, nil
}
