package services

import (
	"strings"
	"testing"

	"financebook/internal/models"
	"financebook/internal/testutil"
)

const importFixture = "amount;date;description;Recipient name;Recipient address;standard_category name;periodic\r\n" +
	"-12.50;2024-03-01;Lunch;Cafe Mia;;Food;false\r\n" +
	"3000;2024-03-02;Salary;ACME;Main St 1;Income;true\r\n" +
	"-8;2024-03-03;\"Coffee; beans\";Cafe Mia;Market Sq 2;Food;no\r\n" +
	"-5;2024-03-04;;;;;\r\n" +
	"not-a-number;2024-03-05;x;y;z;Food;false\r\n" +
	"-1;2024-03-06;too short\r\n"

func TestImportCSV(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewImportService(db)
	user := testutil.CreateTestUser(t, db)

	result, err := svc.ImportCSV(user.ID, strings.NewReader(importFixture))
	testutil.AssertNoError(t, err)

	want := models.ImportResult{CreatedPayments: 4, CreatedRecipients: 2, UpdatedRecipients: 1, CreatedCategories: 2}
	if *result != want {
		t.Errorf("expected %+v, got %+v", want, *result)
	}

	recipients, err := NewRecipientService(db).ListRecipients(user.ID)
	testutil.AssertNoError(t, err)
	for _, r := range recipients {
		if r.Name == "Cafe Mia" && r.AddressOrEmpty() != "Market Sq 2" {
			t.Errorf("expected address to be filled in, got %q", r.AddressOrEmpty())
		}
	}

	items, err := newPaymentItemService(t, db).ListPaymentItems(user.ID, models.PaymentItemFilter{})
	testutil.AssertNoError(t, err)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	// Newest first: the row without category lands in UNCLASSIFIED.
	if items[0].StandardCategory == nil || !items[0].StandardCategory.IsUnclassified() {
		t.Errorf("expected UNCLASSIFIED for an empty category, got %+v", items[0].StandardCategory)
	}
	if items[0].RecipientID != nil {
		t.Error("expected no recipient for an empty name")
	}
	if items[1].DescriptionOrEmpty() != "Coffee; beans" {
		t.Errorf("expected quoted description, got %q", items[1].DescriptionOrEmpty())
	}
	if !items[2].Periodic {
		t.Error("expected salary to be periodic")
	}
}

func TestImportCSV_ReusesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewImportService(db)
	user := testutil.CreateTestUser(t, db)
	standard := testutil.CreateTestCategoryType(t, db, user.ID, "Standard")
	testutil.CreateTestCategoryWithName(t, db, user.ID, standard.ID, nil, "Food")

	csv := "amount;date;description;Recipient name;Recipient address;standard_category name;periodic\n" +
		"-3;2024-01-01;;Bakery;;Food;false\n"

	result, err := svc.ImportCSV(user.ID, strings.NewReader(csv))
	testutil.AssertNoError(t, err)
	if result.CreatedCategories != 0 {
		t.Errorf("expected existing category to be reused, created %d", result.CreatedCategories)
	}

	types, err := NewCategoryTypeService(db).ListCategoryTypes(user.ID)
	testutil.AssertNoError(t, err)
	if len(types) != 1 {
		t.Errorf("expected the existing standard type to be reused, got %d types", len(types))
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)

	result, err := NewImportService(db).ImportCSV(user.ID, strings.NewReader(""))
	testutil.AssertNoError(t, err)
	if result.CreatedPayments != 0 {
		t.Errorf("expected nothing imported, got %d", result.CreatedPayments)
	}
}
