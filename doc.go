// Package quickplot provides quick statistical plots for exploratory
// data analysis.
//
//
// The Plots
//
// Four functions cover the usual first look at a data set:
//     CountPlot    bars of category counts labeled with their percentage
//     Hist         histogram with dashed lines at mean and median
//     Scatter      points of two variables, optionally colored by a third
//     BivBarPlot   bars of a per category mean, labeled "1,234.5"
// Each builds one Figure, shows it on the Device of its Plotter and
// clears the figure again. Only BivBarPlot returns something: the data
// frame of the averages.
//
// The package level functions use DefaultPlotter which writes PNG files
// to the working directory. Use New with an ImageDevice, a Recorder or
// htmlchart.Device to send figures somewhere else.
//
//
// Data Representation: Data Frames
//
// Tabular data lives in a DataFrame. Data can be represented in two
// different ways: either as "slice of measurements" or read from CSV.
//
// "Slice of measurements" are of the following style
//      var data []Measurement
//      type Measurement struct {
//          Height float64
//          Weight float64
//          Age    int
//          Origin string
//      }
// and are converted with NewDataFrameFrom. go-gg tables are converted
// with NewDataFrameFromTable.
//
//
// Types of Data Elements
//
// Internally a data frame stores every value as float64:
//     Float     numeric values as is
//     String    the index of the value in the frame's StringPool
// NaN marks a missing value in both kinds of column.
//
//
// Calculated Values
//
// Your data frame need not contain all data you want to plot as a field.
// By providing appropriate methods on your measurement type you can have
// values computed:
//    func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
//
// Inner Workings
//
// A plot is a list of layers. Each Layer runs the data through a Stat
// (counting, binning, summarizing, averaging, labeling), renames the
// resulting columns and lets a Geom turn the rows into grobs (bars,
// bins, lines, points) of a Figure. A Device finally draws the figure.
package quickplot
