// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing rate-policy documents, translating
// their blocks into the format-agnostic config model, and CTY-to-Go data
// binding for free-form attributes such as params.
//
// A document looks like:
//
//	policy "legacy-tiered" {
//	  params = {
//	    per_diem_rate = 100
//	  }
//
//	  tiers "mileage" {
//	    tier {
//	      width = 100
//	      rate  = 0.58
//	    }
//	    tier {
//	      rate = 0.35
//	    }
//	  }
//
//	  bands "receipt_rate" {
//	    default = 0.55
//	    band {
//	      below = 50
//	      value = 0.40
//	    }
//	  }
//	}
//
// Band bounds use from/to for inclusive ends and above/below for exclusive
// ones. A band may set at most one lower and one upper bound.
package hcl
