package wealth

// EUR is a helper for test to create money from const
func EUR(v float64) Money { return M(v) }

// day is a helper for test to parse a date from const
func day(s string) Date { return MustParseDate(s) }

// testBook returns a book with two funded accounts, the usual starting
// point of most scenarios.
func testBook() *Book {
	b := NewBook()
	b.Accounts.Create("Checking", EUR(1000))
	b.Accounts.Create("Savings", EUR(500))
	return b
}
