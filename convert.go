package tendril

import "github.com/go-tendril/tendril/format"

// Into reinterprets t as format G, validating its content and consuming
// t (the Go idiom substitute for Rust's borrow-checker-enforced move:
// the caller must not use t again after this call, and the conversion
// is a zero-cost rewrap of the same raw state rather than a clone — see
// DESIGN.md's "Borrow vs. consume conversions").
func Into[F, G format.Format, A Atomicity](t Tendril[F, A]) (Tendril[G, A], error) {
	var g G
	if !g.Validate(t.st.Bytes()) {
		return Tendril[G, A]{}, wrapErr("tendril.Into", ErrValidationFailed)
	}
	return Tendril[G, A]{st: t.st}, nil
}

// IntoBytes reinterprets t as uninterpreted bytes. Always succeeds,
// since format.Bytes accepts any content; every format is a subset of
// Bytes.
func IntoBytes[F format.Format, A Atomicity](t Tendril[F, A]) Tendril[format.Bytes, A] {
	return Tendril[format.Bytes, A]{st: t.st}
}

// ASCIIIntoUTF8 widens an ASCII Tendril to UTF8. Infallible: every valid
// ASCII byte sequence is valid UTF-8.
func ASCIIIntoUTF8[A Atomicity](t Tendril[format.ASCII, A]) Tendril[format.UTF8, A] {
	r, err := Into[format.ASCII, format.UTF8, A](t)
	if err != nil {
		panic(err)
	}
	return r
}

// UTF8IntoWTF8 widens a UTF8 Tendril to WTF8. Infallible: every valid
// UTF-8 byte sequence is valid WTF-8.
func UTF8IntoWTF8[A Atomicity](t Tendril[format.UTF8, A]) Tendril[format.WTF8, A] {
	r, err := Into[format.UTF8, format.WTF8, A](t)
	if err != nil {
		panic(err)
	}
	return r
}

// ASCIIIntoWTF8 widens an ASCII Tendril directly to WTF8. Infallible.
func ASCIIIntoWTF8[A Atomicity](t Tendril[format.ASCII, A]) Tendril[format.WTF8, A] {
	r, err := Into[format.ASCII, format.WTF8, A](t)
	if err != nil {
		panic(err)
	}
	return r
}

// TryUTF8IntoASCII narrows a UTF8 Tendril to ASCII. Fails with
// ErrValidationFailed if any byte has its high bit set.
func TryUTF8IntoASCII[A Atomicity](t Tendril[format.UTF8, A]) (Tendril[format.ASCII, A], error) {
	return Into[format.UTF8, format.ASCII, A](t)
}

// TryWTF8IntoUTF8 narrows a WTF8 Tendril to UTF8. Fails with
// ErrValidationFailed if the content holds any isolated surrogate half.
func TryWTF8IntoUTF8[A Atomicity](t Tendril[format.WTF8, A]) (Tendril[format.UTF8, A], error) {
	return Into[format.WTF8, format.UTF8, A](t)
}
