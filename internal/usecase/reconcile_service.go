package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shelfchef/backend/internal/domain"
)

// receiptAbbreviations expands the terse token forms grocery receipts use.
// Matching is whole-token, so "red" is never rewritten inside "shredded".
var receiptAbbreviations = map[string]string{
	"org":   "organic",
	"whl":   "whole",
	"chkn":  "chicken",
	"brst":  "breast",
	"bnls":  "boneless",
	"sknls": "skinless",
	"grnd":  "ground",
	"frsh":  "fresh",
	"frzn":  "frozen",
	"lrg":   "large",
	"med":   "medium",
	"sml":   "small",
	"veg":   "vegetable",
	"flr":   "flour",
	"mlk":   "milk",
	"chse":  "cheese",
	"brd":   "bread",
	"wht":   "white",
	"brn":   "brown",
	"grn":   "green",
	"yel":   "yellow",
	"tom":   "tomato",
	"pot":   "potato",
	"onn":   "onion",
	"jce":   "juice",
	"btr":   "butter",
}

// ReconcileService matches OCR'd receipt lines against the user's inventory
// so a scanned receipt can be folded into the pantry. OCR itself happens
// upstream; the input here is raw text lines.
type ReconcileService struct {
	inventory domain.InventoryRepository
	matcher   *MatcherService
}

// NewReconcileService creates a new reconcile service with dependencies
func NewReconcileService(inventory domain.InventoryRepository, matcher *MatcherService) *ReconcileService {
	return &ReconcileService{
		inventory: inventory,
		matcher:   matcher,
	}
}

// ReconcileReceipt matches each receipt line against the current inventory.
// Lines that normalize to nothing (prices, totals, noise) come back
// unmatched with an empty cleaned name. Inventory is listed once per call.
func (s *ReconcileService) ReconcileReceipt(ctx context.Context, lines []string) ([]domain.ReconciledLine, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}

	profiles := make([]ingredientProfile, len(items))
	for i, item := range items {
		profiles[i] = buildProfile(item.Name)
	}

	results := make([]domain.ReconciledLine, 0, len(lines))
	for _, line := range lines {
		cleaned := cleanReceiptLine(line)

		result := domain.ReconciledLine{
			RawText:     line,
			CleanedName: cleaned,
		}

		if cleaned != "" {
			// The staple shortcut is deliberately skipped here: a "salt"
			// receipt line must not attach itself to an arbitrary item.
			lineProfile := buildProfile(cleaned)
			for i := range items {
				if s.matcher.profileMatches(lineProfile, profiles[i:i+1]) {
					result.InventoryID = items[i].ID
					result.Matched = true
					break
				}
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// CommitReceipt reconciles the lines and adds every unmatched line that
// still names an ingredient to the inventory. Returns the reconciliation
// results plus the newly created items.
func (s *ReconcileService) CommitReceipt(ctx context.Context, lines []string) ([]domain.ReconciledLine, []domain.InventoryItem, error) {
	results, err := s.ReconcileReceipt(ctx, lines)
	if err != nil {
		return nil, nil, err
	}

	var added []domain.InventoryItem
	for _, r := range results {
		if r.Matched || r.CleanedName == "" {
			continue
		}

		item := domain.InventoryItem{
			ID:      uuid.NewString(),
			Name:    r.CleanedName,
			AddedAt: time.Now(),
		}
		if err := s.inventory.Add(ctx, &item); err != nil {
			log.Printf("[RECONCILE] Failed to add %q: %v", item.Name, err)
			continue
		}
		added = append(added, item)
	}

	return results, added, nil
}

// cleanReceiptLine expands receipt abbreviations token by token, then runs
// the standard ingredient normalization
func cleanReceiptLine(line string) string {
	fields := strings.Fields(strings.ToLower(line))
	for i, f := range fields {
		if full, ok := receiptAbbreviations[f]; ok {
			fields[i] = full
		}
	}

	cleaned, _ := normalizePhrase(strings.Join(fields, " "))
	return cleaned
}
