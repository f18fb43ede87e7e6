package steps

import (
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/blessing-poultries/backend/internal/integration/persistence/model"
)

const recordDateLayout = "2006-01-02"

func (t *testContext) anAdminExistsWithEmailAndPassword(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Farm Admin",
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs provisions the admin account if needed and issues a signed
// token pair for it, storing the refresh token the way the token service does.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.anAdminExistsWithEmailAndPassword(email, "SecurePass123!"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("admin not found after creation: %w", err)
		}
	}
	t.currentUserID = userModel.ID

	now := time.Now().UTC()

	accessToken, err := t.signToken(email, "access", now, 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken(email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "blessing-poultries",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// theFollowingExpensesExist seeds expense rows from a table with columns:
// description, amount, category, store_name, date, status.
func (t *testContext) theFollowingExpensesExist(table *godog.Table) error {
	rows, err := tableToMaps(table)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		date, err := parseRecordDate(row["date"])
		if err != nil {
			return err
		}

		expenseID := uuid.New()
		t.lastExpenseID = expenseID

		expense := &model.ExpenseModel{
			ID:          expenseID,
			Description: row["description"],
			Amount:      amount,
			Category:    row["category"],
			StoreName:   row["store_name"],
			Date:        date,
			Status:      row["status"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(expense).Error; err != nil {
			return err
		}
	}
	return nil
}

// theFollowingIncomeRecordsExist seeds income rows from a table with columns:
// description, amount, source, date, status.
func (t *testContext) theFollowingIncomeRecordsExist(table *godog.Table) error {
	rows, err := tableToMaps(table)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", row["amount"], err)
		}
		date, err := parseRecordDate(row["date"])
		if err != nil {
			return err
		}

		incomeID := uuid.New()
		t.lastIncomeID = incomeID

		income := &model.IncomeModel{
			ID:          incomeID,
			Description: row["description"],
			Amount:      amount,
			Source:      row["source"],
			Date:        date,
			Status:      row["status"],
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(income).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aBudgetExistsForWithAmount(month, year int, amount string) error {
	budgetAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid budget amount %q: %w", amount, err)
	}

	budgetID := uuid.New()
	t.lastBudgetID = budgetID

	now := time.Now().UTC()
	budget := &model.MonthlyBudgetModel{
		ID:           budgetID,
		Month:        month,
		Year:         year,
		BudgetAmount: budgetAmount,
		ExpenseLimit: budgetAmount,
		IncomeTarget: decimal.Zero,
		CreatedBy:    t.currentUserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) aBudgetExistsForTheCurrentMonthWithAmount(amount string) error {
	now := time.Now().UTC()
	return t.aBudgetExistsForWithAmount(int(now.Month()), now.Year(), amount)
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// parseRecordDate parses a table date cell. The literal "today" keeps the
// record inside the current summary window regardless of when the suite runs.
func parseRecordDate(value string) (time.Time, error) {
	if value == "today" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(recordDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// tableToMaps converts a godog table with a header row into one map per row.
func tableToMaps(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, tableRow := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, cell := range tableRow.Cells {
			row[header[i]] = cell.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
