package dataset

// Static example lists used when a corpus file is missing or unreadable.
// Kept small and product-flavored so the few-shot prompt stays useful.

func fallbackEnglish() []Record {
	return []Record{
		{Word: "algorithm", Definition: "Step-by-step procedure to solve a problem", Example: "A recipe is an algorithm"},
		{Word: "warranty", Definition: "Promise to fix product if it breaks", Example: "1 year warranty"},
		{Word: "refund", Definition: "Money returned when product is returned", Example: "Full refund in 7 days"},
		{Word: "discount", Definition: "Reduction in price", Example: "50% discount"},
		{Word: "invoice", Definition: "Bill showing what you bought", Example: "Save the invoice"},
	}
}

func fallbackHinglish() []Record {
	return []Record{
		{Word: "movie", Definition: "Film ka matlab picture hai jo cinema hall mein dikhate hain", Example: "What is the movie name", Input: "What is movie", Output: "Film matlab cinema"},
		{Word: "COD", Definition: "Cash on Delivery - jab samaan aaye tab paise do", Example: "COD option choose karo", Input: "What is COD", Output: "COD matlab jab delivery aaye tab cash do"},
		{Word: "EMI", Definition: "Easy Monthly Installment - har mahine thoda pay karo", Example: "EMI option available hai", Input: "Explain EMI", Output: "EMI matlab har mahine thoda thoda pay karo"},
		{Word: "warranty", Definition: "Agar kharab ho toh company free theek karegi", Example: "Warranty period kitna hai", Input: "What is warranty", Output: "Warranty matlab agar kharab ho toh free repair"},
		{Word: "discount", Definition: "Discount matlab kam price - asli price se kam", Example: "Discount kitna hai", Input: "What is discount", Output: "Discount matlab price kam ho gaya"},
	}
}
