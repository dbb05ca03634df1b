package board

import "strings"

// This file contains some sample boards in the wire format, used for testing.

func joinRows(rows ...string) string {
	return strings.Join(rows, "")
}

var (
	// StandardEmpty is the empty standard board.
	StandardEmpty = joinRows(
		"6__2___6___2__6",
		"_5___3___3___5_",
		"__5___2_2___5__",
		"2__5___2___5__2",
		"____5_____5____",
		"_3___3___3___3_",
		"__2___2_2___2__",
		"6__2___5___2__6",
		"__2___2_2___2__",
		"_3___3___3___3_",
		"____5_____5____",
		"2__5___2___5__2",
		"__5___2_2___5__",
		"_5___3___3___5_",
		"6__2___6___2__6",
	)

	// ArbreBoard has "arbRe" going down the middle column (R is a blank)
	// and "be" across.
	ArbreBoard = joinRows(
		"6__2___6___2__6",
		"_5___3___3___5_",
		"__5___2_2___5__",
		"2__5___2___5__2",
		"____5_____5____",
		"_3___3___3___3_",
		"__2___2_2___2__",
		"6__2___a___2__6",
		"__2___2r2___2__",
		"_3___3_be3___3_",
		"____5__R__5____",
		"2__5___e___5__2",
		"__5___2_2___5__",
		"_5___3___3___5_",
		"6__2___6___2__6",
	)

	// ScoringBoard is ArbreBoard with the e of "be" played by a blank and a
	// double letter left open next to the R.
	ScoringBoard = joinRows(
		"6__2___6___2__6",
		"_5___3___3___5_",
		"__5___2_2___5__",
		"2__5___2___5__2",
		"____5_____5____",
		"_3___3___3___3_",
		"__2___2_2___2__",
		"6__2___a___2__6",
		"__2___2r2___2__",
		"_3___3_bE3___3_",
		"____5__R2_5____",
		"2__5___e___5__2",
		"__5___2_2___5__",
		"_5___3___3___5_",
		"6__2___6___2__6",
	)

	// SmallEmpty is an empty 7x7 board.
	SmallEmpty = joinRows(
		"6__2__6",
		"_5___5_",
		"__3_3__",
		"2__5__2",
		"__3_3__",
		"_5___5_",
		"6__2__6",
	)

	// SmallBar is a 7x7 board with "baR" across (R is a blank) and "as" down.
	SmallBar = joinRows(
		"6__2__6",
		"_5___5_",
		"__3_3__",
		"2_baR_2",
		"__3s3__",
		"_5___5_",
		"6__2__6",
	)

	// SmallCrowded is a 7x7 board with several short words.
	SmallCrowded = joinRows(
		"6__2__6",
		"_5_t_5_",
		"__3e3__",
		"2_bas_2",
		"__3_3__",
		"_5ma_5_",
		"6__2__6",
	)
)
