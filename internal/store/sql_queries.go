package store

const (
	createUser = `INSERT INTO users (username, pin_ciphertext, pin_iv, created_at)
    VALUES (?, ?, ?, ?);`

	findUserByUsername = `SELECT user_id, username, pin_ciphertext, pin_iv, created_at
    FROM users
    WHERE username = ?;`

	createTransaction = `INSERT INTO transactions (
			user_id,
			name_ciphertext, name_iv,
			category_emoji_ciphertext, category_emoji_iv,
			category_name_ciphertext, category_name_iv,
			amount_ciphertext, amount_iv,
			note_ciphertext, note_iv,
			repeat_ciphertext, repeat_iv,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// transactionColumns lists every column of the "transactions" table in scan
// order. Filtered SELECTs are assembled with squirrel on top of this list;
// amounts are ciphertext, so no aggregate or ORDER BY ever touches them in
// SQL.
var transactionColumns = []string{
	"transaction_id",
	"user_id",
	"name_ciphertext", "name_iv",
	"category_emoji_ciphertext", "category_emoji_iv",
	"category_name_ciphertext", "category_name_iv",
	"amount_ciphertext", "amount_iv",
	"note_ciphertext", "note_iv",
	"repeat_ciphertext", "repeat_iv",
	"created_at",
}

var largestCandidateColumns = []string{
	"name_ciphertext", "name_iv",
	"amount_ciphertext", "amount_iv",
	"created_at",
}

var categoryAmountColumns = []string{
	"category_emoji_ciphertext", "category_emoji_iv",
	"category_name_ciphertext", "category_name_iv",
	"amount_ciphertext", "amount_iv",
}
