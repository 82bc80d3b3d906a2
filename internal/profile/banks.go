package profile

import (
	"regexp"

	"github.com/Xhelo-hub/bank-select-converter/internal/dates"
	"github.com/Xhelo-hub/bank-select-converter/internal/models"
)

var registry = map[string]*Profile{
	"bkt":        bkt,
	"tibank":     tibank,
	"union":      union,
	"otp":        otp,
	"credins":    credins,
	"procredit":  procredit,
	"raiffeisen": raiffeisen,
	"intesa":     intesa,
	"paysera":    paysera,
}

// BKT prints "05-SEP-25 TYPE REFERENCE ... 1,234.00 5,678.00" with free-form
// detail lines below each transaction.
var bkt = &Profile{
	ID:         "bkt",
	Bank:       "Banka Kombëtare Tregtare",
	Inputs:     []models.DocKind{models.DocPDF},
	DateLayout: dates.DashedMonth,
	Markers:    []string{"bkt", "banka kombetare tregtare", "national commercial bank"},
	PDF: &PDFRules{
		Mode:          ModeTrailingAmounts,
		Anchor:        regexp.MustCompile(`^\s*(\d{2}-[A-Z]{3}-\d{2})\s+(.+)`),
		StopMarkers:   []string{"---", "PAGE NO", "AccountNo:"},
		SkipMarkers:   []string{"Shënim:"},
		OpeningMarker: "OPENING BALANCE:",
		Join:          " | ",
		MaxDetails:    5,
		DebitTypes: []string{
			"COMMISSION", "TRANSFER", "CASH WITHDRAWAL", "UTILITY PAYMENT",
			"ACCOUNT TO ACCOUNT", "PAGESE PER", "KOMISION PER",
		},
	},
	DropLeadingBalanceRow: true,
}

// Tirana Bank lines carry a time, two dates in Albanian month notation, the
// description, a signed amount and the running balance.
var tibank = &Profile{
	ID:         "tibank",
	Bank:       "Tirana Bank",
	Inputs:     []models.DocKind{models.DocPDF},
	DateLayout: dates.SpacedMonth,
	Markers:    []string{"tibank", "tabank", "ti bank", "tirana bank"},
	PDF: &PDFRules{
		Mode:   ModeSignedTail,
		Anchor: regexp.MustCompile(`^\d{2}:\d{2}\s+(\d{2}\s+\p{L}{3}\s+\d{2})\s+\d{2}\s+\p{L}{3}\s+\d{2}\s+`),
		StopMarkers: []string{
			"Numri i llogarisë", "Data e Veprimit", "Datë Valuta", "Përshkrimi",
			"Debi", "Kredi", "Balance", "Nxjerrje Llogarie", "Faqe :",
			"Teprica e mbartur", "Teprica që do te mbartet",
			"Shënim:", "Data e printimit", "Nga :", "Deri :", "Printuar për",
			"Monedha:", "Adresa :", "Tel:", "Status", "nga",
		},
		Join: " ",
	},
	DropLeadingBalanceRow: true,
}

// Union Bank statements put the booking date on its own line; the amounts
// arrive on a later detail line ending "<value-date> <debit> <credit> <balance>".
var union = &Profile{
	ID:         "union",
	Bank:       "Union Bank",
	Inputs:     []models.DocKind{models.DocPDF},
	DateLayout: dates.DashedMonth,
	Markers:    []string{"union bank", "banka union", "balanca e fillimit"},
	PDF: &PDFRules{
		Mode:          ModeDetailLine,
		Anchor:        regexp.MustCompile(`^(\d{2}-[A-Z]{3}-\d{4})`),
		OpeningMarker: "BALANCA E FILLIMIT",
		SkipMarkers: []string{
			"NXJERRJE LLOGARIE", "STATEMENT", "NUMERI I KLIENTIT", "KLIENTI:",
			"ADRESA:", "LLOGARIA:", "PERIUDHA", "DATA  TIPI I TRANSAKSIONIT",
			"PERSHKRIMI", "REFERENCA        SHUMA", "BALANCA E MBARIMIT",
			"UNION BANK", "Firefox", "https://", "FAQE NR", "Dega UB",
			"--------------------------------------------------",
			"DATA E PRINTIMIT", "DATA E FILLIMIT", "DATA E MBARIMIT",
			"DATA  TIPI", "DEBI            KREDI                BALANCA",
		},
		StopMarkers: []string{
			"NXJERRJE LLOGARIE", "LLOGARIA:", "PERIUDHA",
			"DATA  TIPI", "PERSHKRIMI", "BALANCA E",
			"UNION BANK", "Firefox", "FAQE NR",
			"--------------------------------------------------",
		},
		Join: " ",
	},
	DropLeadingBalanceRow: true,
}

// OTP exports both a PDF (debit-only card statements, amounts up to ten
// lines below the booking date) and a CSV with Inflow/Outflow columns.
var otp = &Profile{
	ID:         "otp",
	Bank:       "OTP Bank Albania",
	Inputs:     []models.DocKind{models.DocPDF, models.DocCSV},
	DateLayout: dates.Slashed,
	Markers:    []string{"otp", "otp bank", "otp albania"},
	PDF: &PDFRules{
		Mode:      ModeAmountBelow,
		Anchor:    regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2})\s+`),
		Join:      " ",
		LookAhead: 10,
	},
	CSV: &CSVRules{
		HeaderMarkers: []string{"Transaction date"},
		DateCol:       "Transaction date",
		CreditCol:     "Inflow",
		DebitCol:      "Outflow",
		DescCols:      []string{"Beneficiary/Sender name", "Details"},
		Join:          " - ",
	},
}

var credins = &Profile{
	ID:         "credins",
	Bank:       "Credins Bank",
	Inputs:     []models.DocKind{models.DocCSV},
	DateLayout: dates.Dotted,
	Markers:    []string{"credins"},
	CSV:        credinsStyleCSV,
	EmitBalance: true,
}

// ProCredit CSV exports share the Credins column set. The PDF renders the
// table one cell per line, so it is read as a token stream.
var procredit = &Profile{
	ID:         "procredit",
	Bank:       "ProCredit Bank",
	Inputs:     []models.DocKind{models.DocCSV, models.DocPDF},
	DateLayout: dates.Dotted,
	Markers:    []string{"procredit", "pro credit"},
	CSV:        credinsStyleCSV,
	PDF: &PDFRules{
		Mode:         ModeTokenStream,
		Anchor:       regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
		StartMarkers: []string{"Komente mbi  Veprimin", "Komente mbi Veprimin"},
		Join:         " ",
		MaxDetails:   20,
	},
	EmitBalance: true,
}

var credinsStyleCSV = &CSVRules{
	HeaderMarkers: []string{"RecordNumber", "ValueDate"},
	DateCol:       "ValueDate",
	DebitCol:      "Amount",
	CreditCol:     "Amount1",
	BalanceCol:    "BalanceAfter",
	DescCols:      []string{"TransactionType", "Description1"},
	Join:          " | ",
}

// The misspelled beneficiary header is what Raiffeisen actually exports.
var raiffeisen = &Profile{
	ID:         "raiffeisen",
	Bank:       "Raiffeisen Bank Albania",
	Inputs:     []models.DocKind{models.DocCSV},
	DateLayout: dates.Dotted,
	Markers:    []string{"raiffeisen", "rai bank"},
	CSV: &CSVRules{
		HeaderMarkers: []string{"No", "Value Date", "Processing Date"},
		DateCol:       "Processing Date",
		AmountCol:     "Amount",
		BalanceCol:    "Amount Total",
		RefCol:        "Reference",
		DescCols: []string{
			"Transaction Type",
			"Beneficairy/Ordering name and account number",
			"Description",
		},
		Join:        " ",
		RefPrefix:   "Ref: ",
		SkipMarkers: []string{"Previous Balance"},
	},
	EmitBalance: true,
}

var intesa = &Profile{
	ID:         "intesa",
	Bank:       "Intesa Sanpaolo Bank Albania",
	Inputs:     []models.DocKind{models.DocCSV},
	DateLayout: dates.Dotted,
	Markers:    []string{"intesa", "sanpaolo"},
	CSV: &CSVRules{
		HeaderMarkers: []string{"Data", "Shuma"},
		DateCol:       "Data",
		AmountCol:     "Shuma",
		BalanceCol:    "Balance Amount",
		TypeCol:       "Transaction Type",
		TypeDebit:     "DEBIT",
		TypeCredit:    "KREDIT",
		RefCol:        "Numri i referencës",
		DescCols:      []string{"Përshkrimi"},
		Join:          " | ",
		RefPrefix:     "Ref: ",
		RefLeading:    true,
		PipeClean:     true,
	},
	EmitBalance: true,
}

var paysera = &Profile{
	ID:         "paysera",
	Bank:       "Paysera",
	Inputs:     []models.DocKind{models.DocCSV},
	DateLayout: dates.Timestamped,
	Markers:    []string{"paysera"},
	CSV: &CSVRules{
		HeaderMarkers: []string{"Date and time", "Amount and currency"},
		DateCol:       "Date and time",
		AmountCol:     "Amount and currency",
		BalanceCol:    "Balance",
		DescCols:      []string{"Type", "Recipient / Payer", "Purpose of payment"},
		Join:          " - ",
		AbsBalance:    true,
	},
	EmitBalance: true,
}
