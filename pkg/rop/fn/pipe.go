package fn

// Pipe1 to Pipe9 feed a value through unary functions left to right.
func Pipe1[A, B any](v A, f1 func(A) B) B {
	return f1(v)
}

func Pipe2[A, B, C any](v A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(v))
}

func Pipe3[A, B, C, D any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(v)))
}

func Pipe4[A, B, C, D, E any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) E {
	return f4(f3(f2(f1(v))))
}

func Pipe5[A, B, C, D, E, F any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) F {
	return f5(f4(f3(f2(f1(v)))))
}

func Pipe6[A, B, C, D, E, F, G any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) G {
	return f6(f5(f4(f3(f2(f1(v))))))
}

func Pipe7[A, B, C, D, E, F, G, H any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) H {
	return f7(f6(f5(f4(f3(f2(f1(v)))))))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) I {
	return f8(f7(f6(f5(f4(f3(f2(f1(v))))))))
}

func Pipe9[A, B, C, D, E, F, G, H, I, J any](v A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I, f9 func(I) J) J {
	return f9(f8(f7(f6(f5(f4(f3(f2(f1(v)))))))))
}

// Flow1 to Flow9 compose unary functions left to right into one function.
func Flow1[A, B any](f1 func(A) B) func(A) B {
	return func(v A) B {
		return f1(v)
	}
}

func Flow2[A, B, C any](f1 func(A) B, f2 func(B) C) func(A) C {
	return func(v A) C {
		return f2(f1(v))
	}
}

func Flow3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return func(v A) D {
		return f3(f2(f1(v)))
	}
}

func Flow4[A, B, C, D, E any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) func(A) E {
	return func(v A) E {
		return f4(f3(f2(f1(v))))
	}
}

func Flow5[A, B, C, D, E, F any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) func(A) F {
	return func(v A) F {
		return f5(f4(f3(f2(f1(v)))))
	}
}

func Flow6[A, B, C, D, E, F, G any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G) func(A) G {
	return func(v A) G {
		return f6(f5(f4(f3(f2(f1(v))))))
	}
}

func Flow7[A, B, C, D, E, F, G, H any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H) func(A) H {
	return func(v A) H {
		return f7(f6(f5(f4(f3(f2(f1(v)))))))
	}
}

func Flow8[A, B, C, D, E, F, G, H, I any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I) func(A) I {
	return func(v A) I {
		return f8(f7(f6(f5(f4(f3(f2(f1(v))))))))
	}
}

func Flow9[A, B, C, D, E, F, G, H, I, J any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I, f9 func(I) J) func(A) J {
	return func(v A) J {
		return f9(f8(f7(f6(f5(f4(f3(f2(f1(v)))))))))
	}
}

// Pipe runs v through same-typed stages.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

func Flow[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		return Pipe(v, fns...)
	}
}
