package lib

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func ParseInt(s string) int {
	x, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return x
}

func JsonMarshal(x interface{}) []byte {
	bytes, err := json.Marshal(x)
	if err != nil {
		panic(err)
	}
	return bytes
}

func JsonUnmarshal(bytes []byte, x interface{}) {
	err := json.Unmarshal(bytes, x)
	if err != nil {
		panic(err)
	}
}

func ReadJsonFile(fname string, x interface{}) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		panic(err)
	}
	JsonUnmarshal(bytes, x)
}

func FloatsMean(floats []float64) float64 {
	var sum float64
	for _, x := range floats {
		sum += x
	}
	return sum / float64(len(floats))
}

func FloatsMax(floats []float64) float64 {
	max := floats[0]
	for _, x := range floats {
		if x > max {
			max = x
		}
	}
	return max
}

func FloatsMin(floats []float64) float64 {
	min := floats[0]
	for _, x := range floats {
		if x < min {
			min = x
		}
	}
	return min
}

// ClearDir removes every regular file below dir, leaving the directories.
func ClearDir(dir string) {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if err := os.Remove(path); err != nil {
				log.Println(err)
			}
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		log.Println(err)
	}
}
