package domain

// Suggested category labels surfaced to clients. These are suggestions only;
// the Category field on a transaction remains unconstrained text.
var (
	ExpenseCategories = []string{
		"Food",
		"Transport",
		"Shopping",
		"Entertainment",
		"Health",
		"Bills",
		"Education",
		"Other",
	}

	IncomeCategories = []string{
		"Salary",
		"Freelancing",
		"Investment",
		"Gift",
		"Rental",
		"Other",
	}
)
