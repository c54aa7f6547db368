package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
	"github.com/galahseno/SpendLess-sub000/internal/store"
	"github.com/galahseno/SpendLess-sub000/models"
)

// dashboardService is the concrete implementation of [DashboardService].
//
// The store can only hand back encrypted projections: ciphertexts of the
// same category never match (unique IVs) and encrypted amounts cannot be
// summed, so MAX/SUM/GROUP BY all happen here after decryption.
type dashboardService struct {
	transactionRepository store.TransactionRepository
	transactionCrypto     TransactionCrypto
	settings              prefs.Settings
	logger                *logger.Logger
}

func NewDashboardService(transactionRepository store.TransactionRepository, transactionCrypto TransactionCrypto, settings prefs.Settings, logger *logger.Logger) DashboardService {
	return &dashboardService{
		transactionRepository: transactionRepository,
		transactionCrypto:     transactionCrypto,
		settings:              settings,
		logger:                logger,
	}
}

// Summary computes the account overview: total balance, the transaction
// with the greatest absolute amount, and per-category totals ordered by
// absolute total. Display strings follow the session's preferences.
func (s *dashboardService) Summary(ctx context.Context, userID int64) (models.DashboardSummary, error) {
	log := logger.FromContext(ctx)

	session, err := s.settings.GetUserSession(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Summary").Msg("error reading session preferences")
		return models.DashboardSummary{}, fmt.Errorf("reading session preferences: %w", err)
	}

	largest, balance, err := s.largestAndBalance(ctx, userID)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	totals, err := s.categoryTotals(ctx, userID)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	summary := models.DashboardSummary{
		Balance:        balance,
		BalanceDisplay: FormatAmount(balance, session),
		Largest:        largest,
		CategoryTotals: totals,
	}
	if largest != nil {
		summary.LargestDisplay = FormatAmount(largest.Amount, session)
	}

	return summary, nil
}

func (s *dashboardService) largestAndBalance(ctx context.Context, userID int64) (*models.LargestTransaction, float64, error) {
	log := logger.FromContext(ctx)

	candidates, err := s.transactionRepository.GetLargestTransactionCandidates(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.largestAndBalance").Msg("error fetching candidates")
		return nil, 0, fmt.Errorf("fetching summary candidates: %w", err)
	}

	var (
		largest *models.LargestTransaction
		balance float64
	)
	for _, candidate := range candidates {
		decrypted, err := s.transactionCrypto.DecryptLargestTransaction(ctx, candidate)
		if err != nil {
			return nil, 0, err
		}

		balance += decrypted.Amount
		if largest == nil || math.Abs(decrypted.Amount) > math.Abs(largest.Amount) {
			d := decrypted
			largest = &d
		}
	}

	return largest, balance, nil
}

func (s *dashboardService) categoryTotals(ctx context.Context, userID int64) ([]models.CategoryTotal, error) {
	log := logger.FromContext(ctx)

	records, err := s.transactionRepository.GetCategoryAmounts(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.categoryTotals").Msg("error fetching category amounts")
		return nil, fmt.Errorf("fetching category amounts: %w", err)
	}

	totalsByName := make(map[string]*models.CategoryTotal)
	order := make([]string, 0)

	for _, record := range records {
		category, err := s.transactionCrypto.DecryptCategoryWithEmoji(ctx, record)
		if err != nil {
			return nil, err
		}
		amount, err := s.transactionCrypto.DecryptAmount(ctx, record.Amount)
		if err != nil {
			return nil, err
		}

		total, ok := totalsByName[category.Name]
		if !ok {
			total = &models.CategoryTotal{Category: category}
			totalsByName[category.Name] = total
			order = append(order, category.Name)
		}
		total.Total += amount
		total.Count++
	}

	totals := make([]models.CategoryTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, *totalsByName[name])
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return math.Abs(totals[i].Total) > math.Abs(totals[j].Total)
	})

	return totals, nil
}
