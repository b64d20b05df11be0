// Package contentstream tokenizes PDF page content streams into operations.
//
// A content stream is a postfix program: operands are pushed, then an
// operator consumes them. [Parser] returns the program as a flat list:
//
//	ops, err := contentstream.NewParser(data).Parse()
//	for _, op := range ops {
//		fmt.Println(op.Operator, op.Operands)
//	}
//
// Operands are [core] objects: numbers, literal and hexadecimal strings,
// names, arrays, dictionaries, booleans and null. Comments are skipped. The
// bytes between the ID and EI operators of an inline image are kept as a
// single string operand of ID so that binary data is never tokenized.
//
// Each Parser keeps its own operand stack, so separate parsers may run on
// separate goroutines.
package contentstream
