package board

// DefaultDim is the size of the standard board.
const DefaultDim = 15

// CrosswordGameBoard is the standard layout: = triple word, - double word,
// " triple letter, ' double letter.
var CrosswordGameBoard = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}
