package recognizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/banksms/internal/model"
	"github.com/cleared-dev/banksms/internal/recognizer"
	"github.com/cleared-dev/banksms/internal/smstext"
)

type want struct {
	institution  model.Institution
	amount       string
	direction    model.Direction
	account      string
	counterparty string
	reference    string
	balance      string // "" means no balance
}

var alerts = []struct {
	name   string
	sender string
	body   string
	want   want
}{
	// HDFC
	{
		name:   "hdfc card spend with balance",
		sender: "HDFCBK",
		body:   "Rs.500.00 spent on card x1234 at MERCHANT on 17-Feb-26. Avl bal: Rs.10000.00",
		want:   want{model.InstitutionHDFC, "500", model.DirectionExpense, "1234", "MERCHANT", "", "10000"},
	},
	{
		name:   "hdfc upi sent multiline",
		sender: "VM-HDFCBK",
		body:   "Sent Rs.250.00\nFrom HDFC Bank A/C *1234\nTo SWIGGY LIMITED\nOn 17/02/26\nRef 604812345678\nNot You?\nCall 18002586161/SMS BLOCK UPI to 7308080808",
		want:   want{model.InstitutionHDFC, "250", model.DirectionExpense, "1234", "SWIGGY", "604812345678", ""},
	},
	{
		name:   "hdfc upi info note",
		sender: "AD-HDFCBK",
		body:   "Update! INR 2,500.00 debited from HDFC Bank XX1234 on 17-FEB-26. Info: UPI-ZOMATO-zomato@hdfcbank-HDFC0000001-604812345678. Avl bal:INR 7,500.00",
		want:   want{model.InstitutionHDFC, "2500", model.DirectionExpense, "1234", "ZOMATO", "604812345678", "7500"},
	},
	{
		name:   "hdfc neft salary",
		sender: "JD-HDFCBK",
		body:   "INR 45,000.00 deposited in HDFC Bank A/c XX1234 on 01-FEB-26 for NEFT Cr-CITI0000001-ACME CORP-SALARY FEB 2026-CITIN26012345678.Avl bal INR 52,000.00. Cheque deposits in A/C are subject to clearing",
		want:   want{model.InstitutionHDFC, "45000", model.DirectionIncome, "1234", smstext.LabelSalary, "CITIN26012345678", "52000"},
	},
	{
		name:   "hdfc credit card",
		sender: "AX-HDFCCC",
		body:   "Spent Rs.1299 On HDFC Bank Card 4321 At AMAZON On 2026-02-17:10:15:30 Not You? To Block+Reissue Call 18002586161/SMS BLOCK CC 4321 to 7308080808",
		want:   want{model.InstitutionHDFC, "1299", model.DirectionCreditCardSpend, "4321", "AMAZON", "", ""},
	},

	// ICICI
	{
		name:   "icici upi debit",
		sender: "JM-ICICIB",
		body:   "ICICI Bank Acct XX123 debited for Rs 1,250.00 on 17-Feb-26; SWIGGY credited. UPI:604812345678. Call 18002662 for dispute. SMS BLOCK 123 to 9215676766.",
		want:   want{model.InstitutionICICI, "1250", model.DirectionExpense, "123", "SWIGGY", "604812345678", ""},
	},
	{
		name:   "icici upi credit",
		sender: "JD-ICICIB",
		body:   "Dear Customer, Acct XX123 is credited with Rs 5,000.00 on 17-Feb-26 from JOHN DOE. UPI:604812345679-ICICI Bank.",
		want:   want{model.InstitutionICICI, "5000", model.DirectionIncome, "123", "JOHN DOE", "604812345679", ""},
	},
	{
		name:   "icici credit card",
		sender: "AX-ICICIT",
		body:   "INR 2,345.00 spent using ICICI Bank Card XX4321 on 17-Feb-26 on AMAZON. Avl Limit: INR 45,000.00. If not you, call 1800 2662/SMS BLOCK 4321 to 9215676766",
		want:   want{model.InstitutionICICI, "2345", model.DirectionCreditCardSpend, "4321", "AMAZON", "", ""},
	},
	{
		name:   "icici subscription",
		sender: "AX-ICICIT",
		body:   "INR 649.00 spent on ICICI Bank Card XX4321 on 17-Feb-26 at NETFLIX. Avl Lmt: INR 44,351.00.",
		want:   want{model.InstitutionICICI, "649", model.DirectionCreditCardSpend, "4321", "Netflix", "", ""},
	},
	{
		name:   "icici atm",
		sender: "VK-ICICIB",
		body:   "Rs 5,000.00 withdrawn from ICICI Bank Acct XX123 at ATM on 17-Feb-26. Avl Bal Rs 20,000.00",
		want:   want{model.InstitutionICICI, "5000", model.DirectionExpense, "123", smstext.LabelATM, "", "20000"},
	},

	// SBI
	{
		name:   "sbi debit with reference",
		sender: "VM-SBIINB",
		body:   "Your A/C XX5678 debited by Rs.200.00 on 17Feb26. Ref no 1234567890. Avl Bal Rs.1500.00",
		want:   want{model.InstitutionSBI, "200", model.DirectionExpense, "5678", "", "1234567890", "1500"},
	},
	{
		name:   "sbi upi debit",
		sender: "AD-SBIUPI",
		body:   "Dear UPI user A/C X1234 debited by 250.0 on date 17Feb26 trf to SWIGGY Refno 604812345678. If not u? call 1800111109. -SBI",
		want:   want{model.InstitutionSBI, "250", model.DirectionExpense, "1234", "SWIGGY", "604812345678", ""},
	},
	{
		name:   "sbi upi credit",
		sender: "AD-SBIUPI",
		body:   "Dear SBI User, your A/c X1234-credited by Rs.1000 on 17Feb26 transfer from JOHN DOE Ref No 604812345680 -SBI",
		want:   want{model.InstitutionSBI, "1000", model.DirectionIncome, "1234", "JOHN DOE", "604812345680", ""},
	},
	{
		name:   "sbi has a debit by",
		sender: "BZ-SBIBNK",
		body:   "Your A/C XXXXX1234 has a debit by transfer of Rs 1,000.00 on 17/02/26. Avl Bal Rs 5,432.10.-SBI",
		want:   want{model.InstitutionSBI, "1000", model.DirectionExpense, "1234", "", "", "5432.1"},
	},
	{
		name:   "sbi atm",
		sender: "BZ-SBIBNK",
		body:   "Rs.500 withdrawn at SBI ATM S1AB000123 from A/cX1234 on 17Feb26 Txn# 4567 Avl Bal Rs.2500",
		want:   want{model.InstitutionSBI, "500", model.DirectionExpense, "1234", smstext.LabelATM, "4567", "2500"},
	},
	{
		name:   "sbi credit card",
		sender: "AD-SBICRD",
		body:   "Rs.1,499.00 spent on your SBI Credit Card ending with 4321 at AMAZON on 17/02/26. Avl Lmt Rs.50,000",
		want:   want{model.InstitutionSBI, "1499", model.DirectionCreditCardSpend, "4321", "AMAZON", "", ""},
	},

	// Saraswat
	{
		name:   "saraswat upi debit",
		sender: "VK-SARASB",
		body:   "Your A/c No. XX1234 is debited for INR 750.00 on 17-02-2026 towards UPI/604812345678/SWIGGY. Avl Bal INR 4,250.00 - Saraswat Bank",
		want:   want{model.InstitutionSaraswat, "750", model.DirectionExpense, "1234", "SWIGGY", "604812345678", "4250"},
	},
	{
		name:   "saraswat neft salary",
		sender: "VK-SARASB",
		body:   "Your A/c No. XX1234 is credited for INR 30,000.00 on 01-02-2026 by NEFT/SRCBN26032123456/ACME PAYROLL SAL FEB. Avl Bal INR 34,250.00 - Saraswat Bank",
		want:   want{model.InstitutionSaraswat, "30000", model.DirectionIncome, "1234", smstext.LabelSalary, "SRCBN26032123456", "34250"},
	},

	// Indian Bank
	{
		name:   "indian bank vpa debit",
		sender: "BZ-INDBNK",
		body:   "A/c *1234 debited Rs. 300.00 on 17-02-26 to VPA merchant@okaxis (CAFE COFFEE DAY PVT LTD).UPI Ref no 604812345678. -Indian Bank",
		want:   want{model.InstitutionIndian, "300", model.DirectionExpense, "1234", "CAFE COFFEE DAY", "604812345678", ""},
	},
	{
		name:   "indian bank vpa credit",
		sender: "BZ-INDBNK",
		body:   "A/c *1234 credited Rs. 1,000.00 on 17-02-26 by VPA john@oksbi (JOHN DOE). UPI Ref no 604812345679. Bal Rs. 6,000.00 -Indian Bank",
		want:   want{model.InstitutionIndian, "1000", model.DirectionIncome, "1234", "JOHN DOE", "604812345679", "6000"},
	},

	// Union Bank
	{
		name:   "union debit info note",
		sender: "AX-UNIONB",
		body:   "Your SB A/c *1234 Debited for Rs:500.00 on 17-02-2026 12:00:00 by UPI ref no 604812345678 Info: SWIGGY. Avl Bal Rs:10,000.00 -Union Bank of India",
		want:   want{model.InstitutionUnion, "500", model.DirectionExpense, "1234", "SWIGGY", "604812345678", "10000"},
	},
	{
		name:   "union credit",
		sender: "AX-UNIONB",
		body:   "Your SB A/c *1234 Credited for Rs:2,500.00 on 17-02-2026 by Mob Bk ref no 604812345679 from JOHN DOE. Avl Bal Rs:12,500.00 -Union Bank of India",
		want:   want{model.InstitutionUnion, "2500", model.DirectionIncome, "1234", "JOHN DOE", "604812345679", "12500"},
	},
}

func TestRecognizers_ParseAlerts(t *testing.T) {
	dir := recognizer.DefaultDirectory()
	at := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)

	for _, tt := range alerts {
		t.Run(tt.name, func(t *testing.T) {
			r := dir.Find(tt.sender)
			require.NotNil(t, r, "no recognizer for %s", tt.sender)
			require.Equal(t, tt.want.institution, r.Institution)

			txn, outcome := r.Parse(tt.sender, tt.body, at)
			require.Equal(t, recognizer.OutcomeParsed, outcome)
			require.NotNil(t, txn)

			assert.Equal(t, tt.want.institution, txn.Institution)
			assert.Equal(t, tt.want.amount, txn.Amount.String())
			assert.Equal(t, tt.want.direction, txn.Direction)
			assert.Equal(t, tt.want.direction.IsDebit(), txn.IsDebit)
			assert.Equal(t, tt.want.account, txn.AccountSuffix)
			assert.Equal(t, tt.want.counterparty, txn.Counterparty)
			assert.Equal(t, tt.want.reference, txn.ReferenceID)
			if tt.want.balance == "" {
				assert.Nil(t, txn.AvailableBalance)
			} else if assert.NotNil(t, txn.AvailableBalance) {
				assert.Equal(t, tt.want.balance, txn.AvailableBalance.String())
			}

			assert.Equal(t, tt.body, txn.RawBody)
			assert.Equal(t, tt.sender, txn.Sender)
			assert.Equal(t, smstext.ComputeHash(tt.body), txn.ContentHash)
			assert.Equal(t, at, txn.OccurredAt)
		})
	}
}

func TestRecognizer_Outcomes(t *testing.T) {
	r := recognizer.HDFC()
	at := time.Now()

	tests := []struct {
		name string
		body string
		want recognizer.Outcome
	}{
		{"otp", "Your OTP for txn of Rs 500 is 123456", recognizer.OutcomeNotTransactional},
		{"promotion", "Congratulations! You are pre-approved for a loan. Rs 5 lakh credited instantly", recognizer.OutcomeNotTransactional},
		{"no amount", "Your a/c XX1234 was debited", recognizer.OutcomeNoAmount},
		{"zero amount", "Rs 0.00 debited from a/c XX1234", recognizer.OutcomeNoAmount},
		{"no direction", "Rs 100 txn processed on a/c XX1234", recognizer.OutcomeNoDirection},
		{"promo cashback", "Rs 100 debited from a/c XX1234. Earn cashback on your next order", recognizer.OutcomeNoDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, outcome := r.Parse("HDFCBK", tt.body, at)
			assert.Nil(t, txn)
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestRecognizer_IgnoresHelplineFooter(t *testing.T) {
	tests := []struct {
		name   string
		r      *recognizer.Recognizer
		sender string
		body   string
	}{
		{"union", recognizer.UnionBank(), "UNIONB",
			"A/c *1234 Debited for Rs:500.00 on 17-02-2026 by Mob Bk. For more info call 18002082244."},
		{"hdfc", recognizer.HDFC(), "HDFCBK",
			"Rs.500.00 debited from HDFC Bank XX1234 on 17-02-26. For more info call 18002586161"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, outcome := tt.r.Parse(tt.sender, tt.body, time.Now())
			require.Equal(t, recognizer.OutcomeParsed, outcome)
			assert.Equal(t, "500", txn.Amount.String())
			assert.Empty(t, txn.Counterparty)
		})
	}
}

func TestRecognizer_CardBillFromSavingsIsExpense(t *testing.T) {
	body := "Rs 5,000.00 debited from A/c XX1234 towards SBI Credit Card XX9876 bill. Avl Bal Rs 1000.00"
	txn, outcome := recognizer.SBI().Parse("VM-SBIINB", body, time.Now())
	require.Equal(t, recognizer.OutcomeParsed, outcome)
	assert.Equal(t, model.DirectionExpense, txn.Direction)
	assert.True(t, txn.IsDebit)
	assert.Equal(t, "5000", txn.Amount.String())
	assert.Equal(t, "1234", txn.AccountSuffix)
}

func TestRecognizer_AmountIgnoresWordsEndingInRs(t *testing.T) {
	txn, outcome := recognizer.IndianBank().Parse("INDBNK", "Dear users 5 items: A/c *1234 charged Rs. 300.00 debited", time.Now())
	require.Equal(t, recognizer.OutcomeParsed, outcome)
	assert.Equal(t, "300", txn.Amount.String())
}

func TestRecognizer_PromoCashbackBeatsBankOverride(t *testing.T) {
	// HDFC's "Sent" override would otherwise classify this as an expense.
	body := "Sent Rs.250.00 From HDFC Bank A/C *1234 To SWIGGY. Earn cashback on your next UPI payment"
	txn, outcome := recognizer.HDFC().Parse("HDFCBK", body, time.Now())
	assert.Nil(t, txn)
	assert.Equal(t, recognizer.OutcomeNoDirection, outcome)
}

func TestRecognizer_NilExtractorsUseGenericRules(t *testing.T) {
	r := &recognizer.Recognizer{
		Institution:  model.InstitutionHDFC,
		SenderTokens: []string{"TESTBK"},
	}
	txn, outcome := r.Parse("TESTBK", "Rs.150 debited from A/c XX9876 at CHAI POINT on 17-02-26. Avl Bal Rs.850", time.Now())
	require.Equal(t, recognizer.OutcomeParsed, outcome)
	assert.Equal(t, "150", txn.Amount.String())
	assert.Equal(t, model.DirectionExpense, txn.Direction)
	assert.Equal(t, "9876", txn.AccountSuffix)
	assert.Equal(t, "CHAI POINT", txn.Counterparty)
	require.NotNil(t, txn.AvailableBalance)
	assert.Equal(t, "850", txn.AvailableBalance.String())
}

func TestRecognizer_ClaimsSender(t *testing.T) {
	tests := []struct {
		sender string
		want   model.Institution
	}{
		{"HDFCBK", model.InstitutionHDFC},
		{"hdfcbk", model.InstitutionHDFC},
		{"VM-HDFC-S", model.InstitutionHDFC},
		{"AX-ICICI-T", model.InstitutionICICI},
		{"JM-ICICIB", model.InstitutionICICI},
		{"SBIINB", model.InstitutionSBI},
		{"AD-ATMSBI", model.InstitutionSBI},
		{"VK-SARASW", model.InstitutionSaraswat},
		{"VK-SRCBNK", model.InstitutionSaraswat},
		{"AD-INDB", model.InstitutionIndian},
		{"AD-INDIANBK", model.InstitutionIndian},
		{"AX-UBIN", model.InstitutionUnion},
		{"UBOI", model.InstitutionUnion},
	}

	dir := recognizer.DefaultDirectory()
	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			r := dir.Find(tt.sender)
			require.NotNil(t, r)
			assert.Equal(t, tt.want, r.Institution)
		})
	}
}

func TestDirectory_FindUnknown(t *testing.T) {
	dir := recognizer.DefaultDirectory()
	assert.Nil(t, dir.Find("RANDOMCO"))
	assert.Nil(t, dir.Find(""))
	assert.Nil(t, dir.Find("   "))
}

func TestDirectory_Order(t *testing.T) {
	var got []model.Institution
	for _, r := range recognizer.DefaultDirectory().Recognizers() {
		got = append(got, r.Institution)
	}
	assert.Equal(t, []model.Institution{
		model.InstitutionHDFC,
		model.InstitutionICICI,
		model.InstitutionSBI,
		model.InstitutionSaraswat,
		model.InstitutionIndian,
		model.InstitutionUnion,
	}, got)
}

func TestDirectory_FirstMatchWins(t *testing.T) {
	first := &recognizer.Recognizer{Institution: model.InstitutionHDFC, SenderTokens: []string{"BANK"}}
	second := &recognizer.Recognizer{Institution: model.InstitutionICICI, SenderTokens: []string{"BANK"}}

	dir := recognizer.NewDirectory()
	dir.Register(first)
	dir.Register(second)

	assert.Same(t, first, dir.Find("AD-BANK"))
}

func TestDirectory_RegisterDuplicatePanics(t *testing.T) {
	dir := recognizer.NewDirectory()
	dir.Register(recognizer.HDFC())
	assert.PanicsWithValue(t, "duplicate recognizer: hdfc", func() {
		dir.Register(recognizer.HDFC())
	})
}

func TestDirectory_RecognizersIsCopy(t *testing.T) {
	dir := recognizer.DefaultDirectory()
	list := dir.Recognizers()
	list[0] = nil
	assert.NotNil(t, dir.Recognizers()[0])
}
