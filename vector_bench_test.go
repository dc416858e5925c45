package vec

import "testing"

// BenchmarkRealisticUsage compares common vector workloads against the
// equivalent built-in slice code.
func BenchmarkRealisticUsage(b *testing.B) {

	b.Run("Append/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := NewPlain[int]()
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
			v.Release()
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	b.Run("AppendReserved/Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := NewPlain[int]()
			_ = v.Reserve(1000)
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
			v.Release()
		}
	})

	b.Run("AppendReserved/Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Reuse pattern: fill, clear, fill again in the same block.
	b.Run("FillClearReuse/Vector", func(b *testing.B) {
		v := NewPlain[int]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				_ = v.PushBack(j)
			}
			v.Clear()
		}
	})
}

func BenchmarkEmplaceBack(b *testing.B) {
	v := NewPlain[int]()
	_ = v.Reserve(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.EmplaceBack(func(slot *int) error {
			*slot = i
			return nil
		})
	}
}
