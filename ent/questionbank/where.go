// Code generated by ent, DO NOT EDIT.

package questionbank

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/psinha/quizforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLTE(FieldID, id))
}

// BankID applies equality check predicate on the "bank_id" field. It's identical to BankIDEQ.
func BankID(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldBankID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldCreatedAt, v))
}

// BankIDEQ applies the EQ predicate on the "bank_id" field.
func BankIDEQ(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldBankID, v))
}

// BankIDNEQ applies the NEQ predicate on the "bank_id" field.
func BankIDNEQ(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNEQ(FieldBankID, v))
}

// BankIDIn applies the In predicate on the "bank_id" field.
func BankIDIn(vs ...string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldIn(FieldBankID, vs...))
}

// BankIDNotIn applies the NotIn predicate on the "bank_id" field.
func BankIDNotIn(vs ...string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNotIn(FieldBankID, vs...))
}

// BankIDGT applies the GT predicate on the "bank_id" field.
func BankIDGT(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGT(FieldBankID, v))
}

// BankIDGTE applies the GTE predicate on the "bank_id" field.
func BankIDGTE(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGTE(FieldBankID, v))
}

// BankIDLT applies the LT predicate on the "bank_id" field.
func BankIDLT(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLT(FieldBankID, v))
}

// BankIDLTE applies the LTE predicate on the "bank_id" field.
func BankIDLTE(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLTE(FieldBankID, v))
}

// BankIDContains applies the Contains predicate on the "bank_id" field.
func BankIDContains(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldContains(FieldBankID, v))
}

// BankIDHasPrefix applies the HasPrefix predicate on the "bank_id" field.
func BankIDHasPrefix(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldHasPrefix(FieldBankID, v))
}

// BankIDHasSuffix applies the HasSuffix predicate on the "bank_id" field.
func BankIDHasSuffix(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldHasSuffix(FieldBankID, v))
}

// BankIDEqualFold applies the EqualFold predicate on the "bank_id" field.
func BankIDEqualFold(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEqualFold(FieldBankID, v))
}

// BankIDContainsFold applies the ContainsFold predicate on the "bank_id" field.
func BankIDContainsFold(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldContainsFold(FieldBankID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldContainsFold(FieldName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionBank {
	return predicate.QuestionBank(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionBank) predicate.QuestionBank {
	return predicate.QuestionBank(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionBank) predicate.QuestionBank {
	return predicate.QuestionBank(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionBank) predicate.QuestionBank {
	return predicate.QuestionBank(sql.NotPredicates(p))
}
