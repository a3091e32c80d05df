package evaluator_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"calcgui/evaluator"
)

var _ = Describe("Evaluate", func() {
	DescribeTable("single binary operations",
		func(expr string, want float64) {
			got, err := evaluator.Evaluate(expr)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("addition", "3+4", 7.0),
		Entry("subtraction", "10-2", 8.0),
		Entry("multiplication", "6*7", 42.0),
		Entry("division", "20/4", 5.0),
		Entry("decimals", "1.5+.25", 1.75),
		Entry("trailing dot", "5.*2", 10.0),
	)

	It("divides by zero into infinity", func() {
		got, err := evaluator.Evaluate("5/0")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(got, 1)).To(BeTrue())
	})

	It("divides zero by zero into NaN", func() {
		got, err := evaluator.Evaluate("0/0")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(got)).To(BeTrue())
	})

	It("picks the operator by the fixed check order", func() {
		// '+' is checked before '*', and only the first two pieces count
		got, err := evaluator.Evaluate("2+3*4")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(5.0))

		got, err = evaluator.Evaluate("8/2-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(6.0))
	})

	It("ignores everything after the second operand", func() {
		got, err := evaluator.Evaluate("1+2+3")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(3.0))
	})

	It("treats an out of range operand as infinity", func() {
		got, err := evaluator.Evaluate("1e400*2")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(got, 1)).To(BeTrue())
	})

	DescribeTable("failures",
		func(expr string, cause error) {
			_, err := evaluator.Evaluate(expr)
			Expect(err).To(HaveOccurred())

			var failure *evaluator.EvaluationFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Expr).To(Equal(expr))
			Expect(err).To(MatchError(cause))
		},
		Entry("not a number", "abc+1", evaluator.ErrParse),
		Entry("no operator", "5", evaluator.ErrInvalidExpression),
		Entry("empty display", "", evaluator.ErrInvalidExpression),
		Entry("leading operator", "+5", evaluator.ErrParse),
		Entry("missing second operand", "5+", evaluator.ErrMissingOperand),
		Entry("operator only", "*", evaluator.ErrMissingOperand),
		Entry("two decimal points", "1.2.3+4", evaluator.ErrParse),
		Entry("negative second operand", "5*-3", evaluator.ErrParse),
		Entry("lone dot", ".+1", evaluator.ErrParse),
	)

	It("names the offending operand", func() {
		_, err := evaluator.Evaluate("abc+1")
		Expect(err).To(MatchError(ContainSubstring(`"abc"`)))
	})
})

var _ = Describe("EvaluateStrict", func() {
	DescribeTable("splits at the first operator",
		func(expr string, want float64) {
			got, err := evaluator.EvaluateStrict(expr)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("addition", "3+4", 7.0),
		Entry("subtraction", "10-2", 8.0),
		Entry("multiplication", "6*7", 42.0),
		Entry("division", "20/4", 5.0),
		Entry("negative second operand", "5*-3", -15.0),
		Entry("leading negation", "-5+2", -3.0),
		Entry("operator by position", "8/2", 4.0),
	)

	It("divides by zero into infinity", func() {
		got, err := evaluator.EvaluateStrict("5/0")
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(got, 1)).To(BeTrue())
	})

	DescribeTable("failures",
		func(expr string, cause error) {
			_, err := evaluator.EvaluateStrict(expr)
			Expect(err).To(MatchError(cause))
		},
		Entry("chained operators", "2+3*4", evaluator.ErrParse),
		Entry("no operator", "5", evaluator.ErrInvalidExpression),
		Entry("sign only", "-5", evaluator.ErrInvalidExpression),
		Entry("missing second operand", "5+", evaluator.ErrMissingOperand),
		Entry("not a number", "abc+1", evaluator.ErrParse),
	)
})

var _ = Describe("Mode", func() {
	It("parses mode names", func() {
		m, err := evaluator.ParseMode("STRICT")
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(evaluator.Strict))

		m, err = evaluator.ParseMode("")
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(evaluator.Compat))

		_, err = evaluator.ParseMode("rpn")
		Expect(err).To(MatchError(ContainSubstring("rpn")))
	})

	It("dispatches to the selected algorithm", func() {
		got, err := evaluator.Compat.Evaluate("2+3*4")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(5.0))

		_, err = evaluator.Strict.Evaluate("2+3*4")
		Expect(err).To(HaveOccurred())
	})

	It("prints its name", func() {
		Expect(evaluator.Strict.String()).To(Equal("strict"))
		Expect(evaluator.Compat.String()).To(Equal("compat"))
	})
})

var _ = Describe("FormatResult", func() {
	DescribeTable("renders values",
		func(v float64, want string) {
			Expect(evaluator.FormatResult(v)).To(Equal(want))
		},
		Entry("integral", 7.0, "7.0"),
		Entry("negative integral", -8.0, "-8.0"),
		Entry("fraction", 1.75, "1.75"),
		Entry("zero", 0.0, "0.0"),
		Entry("negative zero", math.Copysign(0, -1), "-0.0"),
		Entry("large", 1e7, "1.0E7"),
		Entry("large fraction", 12345678.9, "1.23456789E7"),
		Entry("small", 0.0001, "1.0E-4"),
		Entry("lower bound", 0.001, "0.001"),
		Entry("positive infinity", math.Inf(1), "Infinity"),
		Entry("negative infinity", math.Inf(-1), "-Infinity"),
		Entry("not a number", math.NaN(), "NaN"),
	)
})
